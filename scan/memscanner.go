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

package scan

import (
	"sort"

	"github.com/coldshard/memstore/cell"
)

// MemScanner is a ScannerPort backed by a plain in-memory slice, used by
// tests and as the simplest possible source for a heap. Cells must
// already be sorted in whatever direction the scanner is driven: forward
// scanners expect ascending order, reverse-only scanners expect the
// row-descending, within-row-ascending order ReversedScanHeap walks.
type MemScanner struct {
	cells       []cell.Cell
	pos         int
	reverseOnly bool
}

// NewMemScanner wraps cells and accepts every ScannerPort operation. Seek
// and Reseek assume ascending cell.Compare order, while SeekToPreviousRow
// and BackwardSeek assume reversed-scan order, so cells must be given in
// the order of the heap that drives the scanner.
func NewMemScanner(cells []cell.Cell) *MemScanner {
	return &MemScanner{cells: cells}
}

// NewReverseOnlyMemScanner wraps cells pre-sorted in reversed-scan order
// (row descending, newest-first within a row) and refuses forward-seek
// operations, matching a scanner whose backing source cannot support
// ascending iteration.
func NewReverseOnlyMemScanner(cells []cell.Cell) *MemScanner {
	return &MemScanner{cells: cells, reverseOnly: true}
}

func (s *MemScanner) Peek() (cell.Cell, bool) {
	if s.pos >= len(s.cells) {
		return cell.Cell{}, false
	}
	return s.cells[s.pos], true
}

func (s *MemScanner) Next() (cell.Cell, bool) {
	c, ok := s.Peek()
	if ok {
		s.pos++
	}
	return c, ok
}

func (s *MemScanner) Seek(key cell.Cell) (bool, error) {
	if s.reverseOnly {
		return false, ErrUnsupported
	}
	s.pos = sort.Search(len(s.cells), func(i int) bool {
		return cell.Compare(s.cells[i], key) >= 0
	})
	return s.pos < len(s.cells), nil
}

func (s *MemScanner) Reseek(key cell.Cell) (bool, error) {
	if s.reverseOnly {
		return false, ErrUnsupported
	}
	if c, ok := s.Peek(); ok && cell.Compare(c, key) >= 0 {
		return true, nil
	}
	return s.Seek(key)
}

// SeekToPreviousRow advances past every remaining cell whose row is not
// strictly less than key's row. It assumes the scanner's own cells are
// already in row-descending order, so this is a single forward scan.
func (s *MemScanner) SeekToPreviousRow(key cell.Cell) (bool, error) {
	for s.pos < len(s.cells) && cell.CompareRows(s.cells[s.pos], key) >= 0 {
		s.pos++
	}
	return s.pos < len(s.cells), nil
}

// BackwardSeek advances until Peek is <= key under the total order (in
// the reversed-scan sense), assuming row-descending, within-row-ascending
// order.
func (s *MemScanner) BackwardSeek(key cell.Cell) (bool, error) {
	for s.pos < len(s.cells) {
		top := s.cells[s.pos]
		if (cell.MatchingRows(key, top) && cell.Compare(key, top) <= 0) || cell.CompareRows(key, top) > 0 {
			return true, nil
		}
		s.pos++
	}
	return false, nil
}

func (s *MemScanner) Close() error { return nil }
