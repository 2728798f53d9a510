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

// Values returns every cell in this view's own orientation. The slice is
// a fresh copy; mutating it never affects the underlying store.
func (m *FlatCellMap) Values() []cell.Cell {
	out := make([]cell.Cell, 0, m.Size())
	if m.descending {
		for i := m.maxIdx - 1; i >= m.minIdx; i-- {
			out = append(out, m.cellAt(i))
		}
		return out
	}
	for i := m.minIdx; i < m.maxIdx; i++ {
		out = append(out, m.cellAt(i))
	}
	return out
}

// ForEach walks every cell in this view's own orientation, stopping
// early if fn returns false.
func (m *FlatCellMap) ForEach(fn func(cell.Cell) bool) {
	if m.descending {
		for i := m.maxIdx - 1; i >= m.minIdx; i-- {
			if !fn(m.cellAt(i)) {
				return
			}
		}
		return
	}
	for i := m.minIdx; i < m.maxIdx; i++ {
		if !fn(m.cellAt(i)) {
			return
		}
	}
}
