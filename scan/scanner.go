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

// Package scan merges sorted cell sources into one ordered stream, both
// ascending (ForwardScanHeap) and reversed (ReversedScanHeap).
package scan

import "github.com/coldshard/memstore/cell"

// ScannerPort is any source of sorted cells — in-memory, file-backed, or
// network-backed. A heap never calls an operation on a closed scanner,
// and treats it opaquely beyond this contract.
type ScannerPort interface {
	// Peek returns the cell a subsequent Next would return, without
	// advancing. ok is false iff the scanner is exhausted.
	Peek() (c cell.Cell, ok bool)
	// Next returns the current Peek and advances.
	Next() (c cell.Cell, ok bool)
	// Seek positions so Peek is the least cell >= key in ascending
	// order. Reverse-only scanners return ErrUnsupported.
	Seek(key cell.Cell) (ok bool, err error)
	// Reseek is like Seek but promises key is not before the current
	// position, allowing the scanner to skip backtracking work.
	Reseek(key cell.Cell) (ok bool, err error)
	// SeekToPreviousRow positions so Peek is the greatest cell whose
	// row is strictly less than key's row. Forward-only scanners
	// return ErrUnsupported.
	SeekToPreviousRow(key cell.Cell) (ok bool, err error)
	// BackwardSeek positions so Peek is the greatest cell <= key under
	// the total order. Forward-only scanners return ErrUnsupported.
	BackwardSeek(key cell.Cell) (ok bool, err error)
	// Close idempotently releases the scanner's resources.
	Close() error
}

// SeekHint lets a caller pass a cheap pre-filter (e.g. a Bloom filter
// over row keys) alongside a RequestSeek, so ForwardScanHeap can skip the
// seek entirely when the hint proves the key cannot be present.
type SeekHint interface {
	MayContain(key cell.Cell) bool
}
