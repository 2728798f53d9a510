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

// find is the pivot of every operation. It runs a bounded binary search
// on the raw [minIdx, maxIdx) range against the total cell.Compare
// order — the store is always physically sorted ascending by the total
// order, independent of this view's orientation.
//
// On an exact match it returns the positive raw index. On a miss it
// returns -(insertionPoint)-1, where insertionPoint is the first raw
// index whose cell is greater than needle under the total order.
//
// Floor/ceiling/lower/higher then reinterpret this raw, orientation-free
// result according to descending (see navigable.go): a descending view's
// floor is an ascending view's ceiling and vice versa, the same relation
// a reversed map has to the map it wraps. Flipping the per-step
// comparison sign instead, while keeping the same branch directions,
// would walk the wrong half: the store is sorted ascending by the total
// order, not by its negation.
func (m *FlatCellMap) find(needle cell.Cell) int {
	lo, hi := m.minIdx, m.maxIdx
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := cell.Compare(m.store.Get(mid), needle)
		switch {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -lo - 1
}

// decodeFind splits a find() result into (rawIndex, found).
func decodeFind(r int) (idx int, found bool) {
	if r >= 0 {
		return r, true
	}
	return -r - 1, false
}
