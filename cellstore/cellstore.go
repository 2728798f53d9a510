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

// Package cellstore provides the immutable, indexed cell containers that
// back a flatmap.FlatCellMap: an abstract Store plus array-backed,
// byte-region-backed, empty and single-entry variants.
package cellstore

import "github.com/coldshard/memstore/cell"

// Store is the abstract indexed container of N cells backing a
// FlatCellMap. Cells must already be sorted ascending by cell.Compare;
// a Store is never mutated after publication.
type Store interface {
	// Len returns N, the number of cells in the store.
	Len() int
	// Get returns the i-th cell. 0 <= i < Len() or it panics: the
	// caller (FlatCellMap) always keeps i inside [minIdx, maxIdx).
	Get(i int) cell.Cell
	// ByteSize is a best-effort memory/byte footprint, used by
	// diagnostics.Stats and never by core navigation logic.
	ByteSize() int64
}

// Array is the simplest Store: a contiguous, pre-sorted slice of Cells
// held on the Go heap. This is the variant most tests in this module
// build against.
type Array struct {
	cells []cell.Cell
}

// NewArray wraps a pre-sorted slice. It does not copy or sort — the
// caller is responsible for handing over cells already ordered by
// cell.Compare, matching the "sorted ascending" invariant of Store.
func NewArray(cells []cell.Cell) *Array {
	return &Array{cells: cells}
}

func (a *Array) Len() int { return len(a.cells) }

func (a *Array) Get(i int) cell.Cell { return a.cells[i] }

func (a *Array) ByteSize() int64 {
	var sz int64
	for _, c := range a.cells {
		sz += c.ByteSize()
	}
	return sz
}

// Empty is the zero-length Store, used by tests exercising an empty
// source from the start.
type emptyStore struct{}

func (emptyStore) Len() int          { return 0 }
func (emptyStore) Get(i int) cell.Cell { panic("cellstore: Get called on empty store") }
func (emptyStore) ByteSize() int64   { return 0 }

// Empty returns the shared zero-length Store.
func Empty() Store { return emptyStore{} }

// Single wraps exactly one Cell. It is a pervasive companion fixture in
// tests and a cheap Store for single-row construction paths.
type single struct{ c cell.Cell }

func (s single) Len() int { return 1 }
func (s single) Get(i int) cell.Cell {
	if i != 0 {
		panic("cellstore: Get index out of range on single-entry store")
	}
	return s.c
}
func (s single) ByteSize() int64 { return s.c.ByteSize() }

// Single returns a Store containing exactly c.
func Single(c cell.Cell) Store { return single{c} }
