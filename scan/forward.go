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
	"container/heap"

	"github.com/coldshard/memstore/cell"
)

// forwardQueue is a container/heap.Interface over scanners ordered
// ascending by their current Peek() under the total order.
type forwardQueue []ScannerPort

func (q forwardQueue) Len() int { return len(q) }
func (q forwardQueue) Less(i, j int) bool {
	a, _ := q[i].Peek()
	b, _ := q[j].Peek()
	return cell.Compare(a, b) < 0
}
func (q forwardQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *forwardQueue) Push(x any)   { *q = append(*q, x.(ScannerPort)) }
func (q *forwardQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// ForwardScanHeap is a keyed priority queue of scanners merged ascending
// by CellComparator on Peek. Next emits the top scanner's peek, advances
// that scanner, and re-heapifies.
type ForwardScanHeap struct {
	q forwardQueue
}

// NewForward builds a ForwardScanHeap over scanners, dropping any that
// are already exhausted.
func NewForward(scanners ...ScannerPort) *ForwardScanHeap {
	h := &ForwardScanHeap{}
	for _, s := range scanners {
		if _, ok := s.Peek(); ok {
			h.q = append(h.q, s)
		}
	}
	heap.Init(&h.q)
	return h
}

// Peek returns the cell a subsequent Next would return.
func (h *ForwardScanHeap) Peek() (cell.Cell, bool) {
	if h.q.Len() == 0 {
		return cell.Cell{}, false
	}
	return h.q[0].Peek()
}

// Next emits the top scanner's peek, advances it, and restores the heap
// invariant, promoting the new root as current.
func (h *ForwardScanHeap) Next() (cell.Cell, bool) {
	if h.q.Len() == 0 {
		return cell.Cell{}, false
	}
	top := h.q[0]
	emit, _ := top.Next()
	if _, ok := top.Peek(); ok {
		heap.Fix(&h.q, 0)
	} else {
		heap.Pop(&h.q)
	}
	return emit, true
}

// Seek repositions every scanner so its Peek is the least cell >= key,
// dropping scanners that report exhaustion.
func (h *ForwardScanHeap) Seek(key cell.Cell) (bool, error) {
	return h.reposition(key, ScannerPort.Seek)
}

// Reseek is like Seek but promises key is not before any scanner's
// current position.
func (h *ForwardScanHeap) Reseek(key cell.Cell) (bool, error) {
	return h.reposition(key, ScannerPort.Reseek)
}

// RequestSeek applies hint before reseeking: when hint proves key cannot
// be present, no scanner is repositioned and the heap is left untouched
// rather than paying for a real seek.
func (h *ForwardScanHeap) RequestSeek(key cell.Cell, hint SeekHint) (bool, error) {
	if hint != nil && !hint.MayContain(key) {
		return h.q.Len() > 0, nil
	}
	return h.Reseek(key)
}

func (h *ForwardScanHeap) reposition(key cell.Cell, op func(ScannerPort, cell.Cell) (bool, error)) (bool, error) {
	kept := h.q[:0]
	for _, s := range h.q {
		ok, err := op(s, key)
		if err != nil {
			return false, err
		}
		if ok {
			kept = append(kept, s)
		}
	}
	h.q = kept
	heap.Init(&h.q)
	return h.q.Len() > 0, nil
}

// Close releases every remaining scanner, returning the first error
// encountered (if any) after attempting to close them all.
func (h *ForwardScanHeap) Close() error {
	var first error
	for _, s := range h.q {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	h.q = nil
	return first
}
