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

import "github.com/coldshard/memstore/cell"

// getValidIndex derives a half-open raw boundary index for building a
// submap. tail requests the raw lower bound (lo of [lo, hi)), !tail the
// raw upper bound (hi). Callers in submap.go are responsible for
// mapping a view's own fromKey/toKey onto the correct raw side: for an
// ascending view fromKey maps to tail=true, for a descending view
// fromKey maps to tail=false, since the raw store is always sorted
// ascending regardless of a view's orientation. adjust itself only
// needs to know which raw side is being computed and whether the
// matched anchor should fall inside or outside the resulting range.
func (m *FlatCellMap) getValidIndex(key cell.Cell, inclusive, tail bool) int {
	idx, found := decodeFind(m.find(key))
	if found {
		idx += adjust(tail, inclusive)
	}
	if idx < m.minIdx {
		idx = m.minIdx
	}
	if idx > m.maxIdx {
		idx = m.maxIdx
	}
	return idx
}

// adjust turns an exact match at raw index i into the correct raw bound:
// the lo bound (tail) keeps i when the anchor is included, advances past
// it otherwise; the hi bound (!tail) advances past i when included
// (half-open range), keeps i otherwise.
func adjust(tail, inclusive bool) int {
	switch {
	case tail && inclusive:
		return 0
	case tail && !inclusive:
		return 1
	case !tail && inclusive:
		return 1
	default: // !tail && !inclusive
		return 0
	}
}
