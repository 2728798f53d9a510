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

// Package diagnostics summarizes the memory footprint of a set of
// published FlatCellMap generations for logging and status endpoints.
package diagnostics

import (
	"fmt"

	units "github.com/docker/go-units"

	"github.com/coldshard/memstore/flatmap"
)

// Report is a point-in-time summary across every generation a
// registry.StoreRegistry currently holds.
type Report struct {
	Generations int
	TotalCells  int
	TotalBytes  int64
}

// String renders a one-line human-readable summary.
func (r Report) String() string {
	return fmt.Sprintf("%d generations, %d cells, %s", r.Generations, r.TotalCells, units.BytesSize(float64(r.TotalBytes)))
}

// Summarize aggregates Stats across maps.
func Summarize(maps []*flatmap.FlatCellMap) Report {
	r := Report{Generations: len(maps)}
	for _, m := range maps {
		s := m.Stats()
		r.TotalCells += s.Size
		r.TotalBytes += s.ByteSize
	}
	return r
}
