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

// FirstKey returns the first cell in this view's own orientation.
func (m *FlatCellMap) FirstKey() (cell.Cell, bool) {
	if m.IsEmpty() {
		return cell.Cell{}, false
	}
	return m.cellAt(m.firstStoreIndex()), true
}

// LastKey returns the last cell in this view's own orientation.
func (m *FlatCellMap) LastKey() (cell.Cell, bool) {
	if m.IsEmpty() {
		return cell.Cell{}, false
	}
	return m.cellAt(m.lastStoreIndex()), true
}

// ContainsKey reports whether key has an exact match in this view.
func (m *FlatCellMap) ContainsKey(key cell.Cell) bool {
	_, found := decodeFind(m.find(key))
	return found
}

// Get returns the exact match for key, if any.
func (m *FlatCellMap) Get(key cell.Cell) (cell.Cell, bool) {
	idx, found := decodeFind(m.find(key))
	if !found || idx < m.minIdx || idx >= m.maxIdx {
		return cell.Cell{}, false
	}
	return m.cellAt(idx), true
}

// FloorKey returns the greatest cell <= key in ascending-order terms, or
// for a descending view the least cell >= key — i.e. an ascending view's
// floor is a descending view's ceiling and vice versa, so every query
// here is answered by the same pair of raw-index primitives with the
// roles swapped by descending.
func (m *FlatCellMap) FloorKey(key cell.Cell) (cell.Cell, bool) {
	if m.descending {
		return m.rawCeiling(key)
	}
	return m.rawFloor(key)
}

// CeilingKey returns the least cell >= key in ascending-order terms, or
// for a descending view the greatest cell <= key.
func (m *FlatCellMap) CeilingKey(key cell.Cell) (cell.Cell, bool) {
	if m.descending {
		return m.rawFloor(key)
	}
	return m.rawCeiling(key)
}

// LowerKey returns the greatest cell strictly < key in ascending-order
// terms, or for a descending view the least cell strictly > key.
func (m *FlatCellMap) LowerKey(key cell.Cell) (cell.Cell, bool) {
	if m.descending {
		return m.rawHigher(key)
	}
	return m.rawLower(key)
}

// HigherKey returns the least cell strictly > key in ascending-order
// terms, or for a descending view the greatest cell strictly < key.
func (m *FlatCellMap) HigherKey(key cell.Cell) (cell.Cell, bool) {
	if m.descending {
		return m.rawLower(key)
	}
	return m.rawHigher(key)
}

// rawFloor/rawCeiling/rawLower/rawHigher operate purely on raw store
// index order (ascending by construction) and are oblivious to
// descending; the exported Floor/Ceiling/Lower/Higher above pick which
// of these to call based on orientation.

func (m *FlatCellMap) rawFloor(key cell.Cell) (cell.Cell, bool) {
	idx, found := decodeFind(m.find(key))
	if !found {
		idx--
	}
	if idx < m.minIdx || idx >= m.maxIdx {
		return cell.Cell{}, false
	}
	return m.cellAt(idx), true
}

func (m *FlatCellMap) rawCeiling(key cell.Cell) (cell.Cell, bool) {
	idx, _ := decodeFind(m.find(key))
	if idx < m.minIdx || idx >= m.maxIdx {
		return cell.Cell{}, false
	}
	return m.cellAt(idx), true
}

func (m *FlatCellMap) rawLower(key cell.Cell) (cell.Cell, bool) {
	idx, _ := decodeFind(m.find(key))
	idx--
	if idx < m.minIdx || idx >= m.maxIdx {
		return cell.Cell{}, false
	}
	return m.cellAt(idx), true
}

func (m *FlatCellMap) rawHigher(key cell.Cell) (cell.Cell, bool) {
	idx, found := decodeFind(m.find(key))
	if found {
		idx++
	}
	if idx < m.minIdx || idx >= m.maxIdx {
		return cell.Cell{}, false
	}
	return m.cellAt(idx), true
}
