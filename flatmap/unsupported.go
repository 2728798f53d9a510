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

// Put is unsupported: FlatCellMap is built once from a store and never
// mutated afterwards.
func (m *FlatCellMap) Put(cell.Cell) error { return ErrUnsupported }

// Remove is unsupported for the same reason as Put.
func (m *FlatCellMap) Remove(cell.Cell) error { return ErrUnsupported }

// Clear is unsupported for the same reason as Put.
func (m *FlatCellMap) Clear() error { return ErrUnsupported }

// PollFirstEntry is unsupported: polling implies removal.
func (m *FlatCellMap) PollFirstEntry() (cell.Cell, error) { return cell.Cell{}, ErrUnsupported }

// PollLastEntry is unsupported: polling implies removal.
func (m *FlatCellMap) PollLastEntry() (cell.Cell, error) { return cell.Cell{}, ErrUnsupported }
