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

// SubMap returns the view of cells between fromKey and toKey, honoring
// inclusivity at each end. Bounds are interpreted in this view's own
// orientation: for a descending view, fromKey is still the "first"
// (i.e. largest) bound a caller walking the view would see first.
func (m *FlatCellMap) SubMap(fromKey cell.Cell, fromInclusive bool, toKey cell.Cell, toInclusive bool) *FlatCellMap {
	var lo, hi int
	if m.descending {
		lo = m.getValidIndex(toKey, toInclusive, true)
		hi = m.getValidIndex(fromKey, fromInclusive, false)
	} else {
		lo = m.getValidIndex(fromKey, fromInclusive, true)
		hi = m.getValidIndex(toKey, toInclusive, false)
	}
	if hi < lo {
		hi = lo
	}
	return &FlatCellMap{store: m.store, minIdx: lo, maxIdx: hi, descending: m.descending}
}

// HeadMap returns the view of cells strictly (or inclusively) before
// toKey, in this view's own orientation.
func (m *FlatCellMap) HeadMap(toKey cell.Cell, inclusive bool) *FlatCellMap {
	if m.descending {
		lo := m.getValidIndex(toKey, inclusive, true)
		return &FlatCellMap{store: m.store, minIdx: lo, maxIdx: m.maxIdx, descending: true}
	}
	hi := m.getValidIndex(toKey, inclusive, false)
	return &FlatCellMap{store: m.store, minIdx: m.minIdx, maxIdx: hi, descending: false}
}

// TailMap returns the view of cells strictly (or inclusively) after
// fromKey, in this view's own orientation.
func (m *FlatCellMap) TailMap(fromKey cell.Cell, inclusive bool) *FlatCellMap {
	if m.descending {
		hi := m.getValidIndex(fromKey, inclusive, false)
		return &FlatCellMap{store: m.store, minIdx: m.minIdx, maxIdx: hi, descending: true}
	}
	lo := m.getValidIndex(fromKey, inclusive, true)
	return &FlatCellMap{store: m.store, minIdx: lo, maxIdx: m.maxIdx, descending: false}
}

// DescendingMap returns a view of the same [minIdx, maxIdx) range with
// orientation flipped. It shares the underlying store; no cells are
// copied or reordered.
func (m *FlatCellMap) DescendingMap() *FlatCellMap {
	return &FlatCellMap{store: m.store, minIdx: m.minIdx, maxIdx: m.maxIdx, descending: !m.descending}
}
