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
	"github.com/coldshard/memstore/settings"
)

// ShadowAware is implemented by scanners that can hold a pending
// position with no materialized cell (a sentinel "shadow" entry, used by
// index-only sources tracking a seek that hasn't resolved to a real
// value yet). pollRealKV skips these rather than emitting them.
type ShadowAware interface {
	ScannerPort
	IsShadow() bool
}

// reversedCompare orders two cells the way ReversedScanHeap walks them:
// greater row first, and within a row the full ascending total order
// (which already puts the newest timestamp first).
func reversedCompare(a, b cell.Cell) int {
	if r := cell.CompareRows(a, b); r != 0 {
		return -r
	}
	return cell.Compare(a, b)
}

// reversedQueue is a container/heap.Interface over scanners ordered by
// reversedCompare on their current Peek().
type reversedQueue []ScannerPort

func (q reversedQueue) Len() int { return len(q) }
func (q reversedQueue) Less(i, j int) bool {
	a, _ := q[i].Peek()
	b, _ := q[j].Peek()
	return reversedCompare(a, b) < 0
}
func (q reversedQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *reversedQueue) Push(x any)   { *q = append(*q, x.(ScannerPort)) }
func (q *reversedQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// ReversedScanHeap merges sorted ScannerPorts into a single stream that
// walks rows from highest to lowest and, within each row, returns cells
// in newest-first order. It is driven only by Next, SeekToPreviousRow
// and BackwardSeek — forward-seek operations are illegal state here.
type ReversedScanHeap struct {
	heap         reversedQueue
	current      ScannerPort
	pendingClose []ScannerPort
	trace        *trace
}

// NewReversed builds a ReversedScanHeap over scanners, moving any
// already-exhausted scanner straight into pendingClose.
func NewReversed(scanners ...ScannerPort) *ReversedScanHeap {
	h := &ReversedScanHeap{trace: newTrace()}
	for _, s := range scanners {
		if _, ok := s.Peek(); ok {
			h.heap = append(h.heap, s)
		} else {
			h.pendingClose = append(h.pendingClose, s)
			h.trace.record("pendingClose", nil)
		}
	}
	heap.Init(&h.heap)
	h.current = h.pollRealKV()
	return h
}

// pollRealKV pops scanners from the heap, skipping (and advancing past)
// any shadow cell, until it finds a scanner whose peek is a real cell,
// or the heap empties. A run of more than settings.Current.ShadowCellBudget
// consecutive shadow cells (0 means unbounded) is treated as an invariant
// violation and panics, rather than spinning silently.
func (h *ReversedScanHeap) pollRealKV() ScannerPort {
	skipped := 0
	for h.heap.Len() > 0 {
		s := heap.Pop(&h.heap).(ScannerPort)
		if sa, ok := s.(ShadowAware); ok && sa.IsShadow() {
			skipped++
			if budget := settings.Current.ShadowCellBudget; budget > 0 && skipped > budget {
				panic("scan: pollRealKV exceeded shadow cell skip budget")
			}
			h.trace.record("poll-shadow-skip", peekRow(s))
			if _, ok := s.Next(); ok {
				heap.Push(&h.heap, s)
				continue
			}
			h.pendingClose = append(h.pendingClose, s)
			h.trace.record("pendingClose", nil)
			continue
		}
		h.trace.record("poll", peekRow(s))
		return s
	}
	return nil
}

// Peek returns the cell a subsequent Next would return.
func (h *ReversedScanHeap) Peek() (cell.Cell, bool) {
	if h.current == nil {
		return cell.Cell{}, false
	}
	return h.current.Peek()
}

// Next emits current's peek, advances it, and repositions current
// (via seekToPreviousRow) if it crossed over the row boundary, or
// swaps it out if the heap root now outranks it under reversedCompare.
func (h *ReversedScanHeap) Next() (cell.Cell, bool) {
	if h.current == nil {
		return cell.Cell{}, false
	}
	emit, _ := h.current.Next()
	after, hasAfter := h.current.Peek()
	if !hasAfter || cell.CompareRows(after, emit) > 0 {
		h.reinsertOrClose(h.current, func(s ScannerPort) (bool, error) {
			return s.SeekToPreviousRow(emit)
		})
		h.current = h.pollRealKV()
		return emit, true
	}
	if h.heap.Len() > 0 {
		rootPeek, _ := h.heap[0].Peek()
		if reversedCompare(rootPeek, after) < 0 {
			heap.Push(&h.heap, h.current)
			h.current = h.pollRealKV()
		}
	}
	return emit, true
}

// SeekToPreviousRow positions so the next emitted cell has row strictly
// less than seekKey's row.
func (h *ReversedScanHeap) SeekToPreviousRow(seekKey cell.Cell) bool {
	if h.current == nil {
		return false
	}
	heap.Push(&h.heap, h.current)
	h.current = nil
	for h.heap.Len() > 0 {
		s := heap.Pop(&h.heap).(ScannerPort)
		top, _ := s.Peek()
		if cell.CompareRows(top, seekKey) < 0 {
			heap.Push(&h.heap, s)
			h.current = h.pollRealKV()
			return h.current != nil
		}
		h.reinsertOrClose(s, func(s ScannerPort) (bool, error) {
			return s.SeekToPreviousRow(seekKey)
		})
	}
	return false
}

// BackwardSeek positions so the next emitted cell is <= seekKey under
// the total order.
func (h *ReversedScanHeap) BackwardSeek(seekKey cell.Cell) bool {
	if h.current == nil {
		return false
	}
	heap.Push(&h.heap, h.current)
	h.current = nil
	for h.heap.Len() > 0 {
		s := heap.Pop(&h.heap).(ScannerPort)
		top, _ := s.Peek()
		if (cell.MatchingRows(seekKey, top) && cell.Compare(seekKey, top) <= 0) || cell.CompareRows(seekKey, top) > 0 {
			heap.Push(&h.heap, s)
			h.current = h.pollRealKV()
			return h.current != nil
		}
		h.reinsertOrClose(s, func(s ScannerPort) (bool, error) {
			return s.BackwardSeek(seekKey)
		})
	}
	return false
}

// reinsertOrClose repositions s with op; a scanner that can no longer
// reposition (returns false, or fails) goes into pendingClose instead of
// back into the heap.
func (h *ReversedScanHeap) reinsertOrClose(s ScannerPort, op func(ScannerPort) (bool, error)) {
	ok, err := op(s)
	if err != nil || !ok {
		h.pendingClose = append(h.pendingClose, s)
		h.trace.record("pendingClose", nil)
		return
	}
	h.trace.record("reposition", peekRow(s))
	heap.Push(&h.heap, s)
}

// Seek, Reseek and RequestSeek are forward-only operations; the reverse
// heap is driven exclusively by Next, SeekToPreviousRow and
// BackwardSeek.
func (h *ReversedScanHeap) Seek(cell.Cell) (bool, error)                   { return false, ErrIllegalState }
func (h *ReversedScanHeap) Reseek(cell.Cell) (bool, error)                 { return false, ErrIllegalState }
func (h *ReversedScanHeap) RequestSeek(cell.Cell, SeekHint) (bool, error)  { return false, ErrIllegalState }

// SeekToLastRow is not implemented.
func (h *ReversedScanHeap) SeekToLastRow() (bool, error) { return false, ErrUnsupported }

// DrainPendingClose returns and clears the scanners collected since the
// last drain. Callers close them at a safe point, outside the merge's
// hot path.
func (h *ReversedScanHeap) DrainPendingClose() []ScannerPort {
	out := h.pendingClose
	h.pendingClose = nil
	if len(out) > 0 {
		h.trace.record("drain", nil)
	}
	return out
}

// Trace returns the ring buffer of recent heap transitions, in
// chronological order. Empty unless settings.Current.TraceScans was set
// while the transitions happened.
func (h *ReversedScanHeap) Trace() []TraceEvent { return h.trace.snapshot() }

// AssertNoOverlap reports whether current, the heap and pendingClose are
// pairwise disjoint — the invariant that no scanner is ever tracked in
// more than one of those three places at once.
func (h *ReversedScanHeap) AssertNoOverlap() bool {
	seen := make(map[ScannerPort]bool, len(h.heap)+len(h.pendingClose)+1)
	if h.current != nil {
		seen[h.current] = true
	}
	for _, s := range h.heap {
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	for _, s := range h.pendingClose {
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}
