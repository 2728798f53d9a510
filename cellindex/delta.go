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

// Package cellindex holds cells written since the last flush, ordered by
// the total cell order, so a pending write set can back a scanner or be
// flattened into a new FlatCellMap generation without ever sorting a
// growing slice on every insert.
package cellindex

import (
	"github.com/google/btree"

	"github.com/coldshard/memstore/cell"
)

func less(a, b cell.Cell) bool { return cell.Compare(a, b) < 0 }

// DeltaIndex is a B-tree-ordered set of pending cells. Writers call Put;
// a flush path calls Snapshot to get a stable, copy-on-write view to
// drain while new writes keep landing in the live tree.
type DeltaIndex struct {
	tree *btree.BTreeG[cell.Cell]
}

// New returns an empty DeltaIndex.
func New() *DeltaIndex {
	return &DeltaIndex{tree: btree.NewG(32, less)}
}

// Put inserts c, replacing any cell that already compares equal under
// the total order.
func (d *DeltaIndex) Put(c cell.Cell) { d.tree.ReplaceOrInsert(c) }

// Len returns the number of cells currently held.
func (d *DeltaIndex) Len() int { return d.tree.Len() }

// Snapshot returns a copy-on-write clone, safe to read while further
// writes land on d.
func (d *DeltaIndex) Snapshot() *DeltaIndex {
	return &DeltaIndex{tree: d.tree.Clone()}
}

// Ascend calls fn for every cell in ascending order, stopping early if
// fn returns false.
func (d *DeltaIndex) Ascend(fn func(cell.Cell) bool) {
	d.tree.Ascend(func(c cell.Cell) bool { return fn(c) })
}

// Values materializes the index into a sorted slice, ready to back a
// flatmap.FlatCellMap (via cellstore.NewArray) or a scan.MemScanner.
func (d *DeltaIndex) Values() []cell.Cell {
	out := make([]cell.Cell, 0, d.tree.Len())
	d.tree.Ascend(func(c cell.Cell) bool {
		out = append(out, c)
		return true
	})
	return out
}
