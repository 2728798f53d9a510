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

// Package flatmap implements FlatCellMap: an immutable, array-backed
// navigable map over cells, sharing a single cellstore.Store among a
// whole family of submaps and descending views.
package flatmap

import (
	"github.com/coldshard/memstore/cell"
	"github.com/coldshard/memstore/cellstore"
)

// FlatCellMap is a (store, [minIdx, maxIdx), descending) triple. Every
// submap, head/tail map and descending view shares the same store: no
// copying ever happens. Once constructed a FlatCellMap is never mutated;
// the only requirement is that construction happen-before any other
// goroutine observes the reference (see the registry package for how
// that publication is done in practice).
type FlatCellMap struct {
	store      cellstore.Store
	minIdx     int
	maxIdx     int
	descending bool
}

// New builds a FlatCellMap over the whole store in ascending order.
func New(store cellstore.Store) *FlatCellMap {
	return &FlatCellMap{store: store, minIdx: 0, maxIdx: store.Len(), descending: false}
}

// Size returns maxIdx - minIdx, the logical size of this view.
func (m *FlatCellMap) Size() int { return m.maxIdx - m.minIdx }

// IsEmpty reports whether Size() == 0.
func (m *FlatCellMap) IsEmpty() bool { return m.Size() == 0 }

// Descending reports the orientation of this view.
func (m *FlatCellMap) Descending() bool { return m.descending }

// Comparator exposes the total order this map is sorted under. Descending
// views still compare with the same total order — orientation only
// changes iteration and boundary direction, never what "equal" means.
func (m *FlatCellMap) Comparator() func(a, b cell.Cell) int { return cell.Compare }

// storeIndex maps a logical position (0-based within [minIdx, maxIdx), in
// this view's orientation) to the underlying store index.
func (m *FlatCellMap) storeIndex(logical int) int {
	if m.descending {
		return m.maxIdx - 1 - logical
	}
	return m.minIdx + logical
}

// firstStoreIndex/lastStoreIndex are the store indices of this view's
// first and last element in its own orientation.
func (m *FlatCellMap) firstStoreIndex() int {
	if m.descending {
		return m.maxIdx - 1
	}
	return m.minIdx
}

func (m *FlatCellMap) lastStoreIndex() int {
	if m.descending {
		return m.minIdx
	}
	return m.maxIdx - 1
}

func (m *FlatCellMap) cellAt(storeIdx int) cell.Cell { return m.store.Get(storeIdx) }
