/*
Copyright (C) 2024-2026  memstore-core contributors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package flatmap

import (
	"fmt"

	units "github.com/docker/go-units"
)

// Stats summarizes a view for logging and diagnostics endpoints.
type Stats struct {
	Size       int
	Descending bool
	ByteSize   int64
}

// Stats computes a snapshot describing this view. ByteSize only accounts
// for the [minIdx, maxIdx) slice of the shared store, not the whole
// store behind it.
func (m *FlatCellMap) Stats() Stats {
	var size int64
	for i := m.minIdx; i < m.maxIdx; i++ {
		size += m.cellAt(i).ByteSize()
	}
	return Stats{Size: m.Size(), Descending: m.descending, ByteSize: size}
}

// String renders a human-readable summary, e.g. "512 cells, 48KiB, asc".
func (s Stats) String() string {
	orientation := "asc"
	if s.Descending {
		orientation = "desc"
	}
	return fmt.Sprintf("%d cells, %s, %s", s.Size, units.BytesSize(float64(s.ByteSize)), orientation)
}
