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

import "github.com/coldshard/memstore/settings"

const traceRingSize = 256

// TraceEvent records one heap transition: a poll that surfaced a real
// cell or skipped a shadow one, a scanner being repositioned and pushed
// back onto the heap, or a scanner being moved into (or drained from)
// pendingClose.
type TraceEvent struct {
	Kind string
	Row  string
}

// trace is a fixed-size ring buffer of the most recent heap
// transitions. Recording is a no-op unless settings.Current.TraceScans
// is set, so the hot path pays nothing when tracing is off.
type trace struct {
	events []TraceEvent
	next   int
	full   bool
}

func newTrace() *trace {
	return &trace{events: make([]TraceEvent, traceRingSize)}
}

func (t *trace) record(kind string, row []byte) {
	if !settings.Current.TraceScans {
		return
	}
	t.events[t.next] = TraceEvent{Kind: kind, Row: string(row)}
	t.next++
	if t.next == len(t.events) {
		t.next = 0
		t.full = true
	}
}

// snapshot returns the ring buffer contents in chronological order.
func (t *trace) snapshot() []TraceEvent {
	if !t.full {
		out := make([]TraceEvent, t.next)
		copy(out, t.events[:t.next])
		return out
	}
	out := make([]TraceEvent, len(t.events))
	copy(out, t.events[t.next:])
	copy(out[len(t.events)-t.next:], t.events[:t.next])
	return out
}

func peekRow(s ScannerPort) []byte {
	if c, ok := s.Peek(); ok {
		return c.Row
	}
	return nil
}
