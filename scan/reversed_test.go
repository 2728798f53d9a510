package scan

import (
	"math"
	"testing"

	"github.com/coldshard/memstore/cell"
	"github.com/coldshard/memstore/settings"
)

// shadowMemScanner wraps MemScanner with a parallel slice marking which
// positions are shadow (placeholder, no real value) cells.
type shadowMemScanner struct {
	*MemScanner
	shadow []bool
}

func (s *shadowMemScanner) IsShadow() bool {
	if s.pos >= len(s.shadow) {
		return false
	}
	return s.shadow[s.pos]
}

func rc(row string, ts int64) cell.Cell {
	return cell.New([]byte(row), []byte("f"), []byte("q"), ts, cell.Put, nil)
}

func wantCell(t *testing.T, got cell.Cell, ok bool, row string, ts int64) {
	t.Helper()
	if !ok {
		t.Fatalf("expected a cell, got exhaustion")
	}
	if string(got.Row) != row || got.Timestamp != ts {
		t.Fatalf("got (%s,%d), want (%s,%d)", got.Row, got.Timestamp, row, ts)
	}
}

// TestReversedScanTwoSources reproduces the canonical two-source merge:
// S1 emits rows [c, a] newest-first per row, S2 emits [b]; the merged
// stream must walk (c,2),(c,1),(b),(a,1).
func TestReversedScanTwoSources(t *testing.T) {
	s1 := NewReverseOnlyMemScanner([]cell.Cell{rc("c", 2), rc("c", 1), rc("a", 1)})
	s2 := NewReverseOnlyMemScanner([]cell.Cell{rc("b", 1)})
	h := NewReversed(s1, s2)

	got, ok := h.Next()
	wantCell(t, got, ok, "c", 2)
	got, ok = h.Next()
	wantCell(t, got, ok, "c", 1)
	got, ok = h.Next()
	wantCell(t, got, ok, "b", 1)
	got, ok = h.Next()
	wantCell(t, got, ok, "a", 1)
	if _, ok := h.Next(); ok {
		t.Fatalf("expected exhaustion")
	}
}

// TestSeekToPreviousRowSkipsToStrictlyLowerRow reproduces: after emitting
// (c,2),(c,1), seekToPreviousRow((c,*)) must position to the greatest row
// strictly less than c (row b), not skip past it.
func TestSeekToPreviousRowSkipsToStrictlyLowerRow(t *testing.T) {
	s1 := NewReverseOnlyMemScanner([]cell.Cell{rc("c", 2), rc("c", 1), rc("a", 1)})
	s2 := NewReverseOnlyMemScanner([]cell.Cell{rc("b", 1)})
	h := NewReversed(s1, s2)

	got, ok := h.Next()
	wantCell(t, got, ok, "c", 2)
	got, ok = h.Next()
	wantCell(t, got, ok, "c", 1)

	if !h.SeekToPreviousRow(rc("c", 0)) {
		t.Fatalf("expected seekToPreviousRow to find a lower row")
	}
	got, ok = h.Next()
	wantCell(t, got, ok, "b", 1)
	got, ok = h.Next()
	wantCell(t, got, ok, "a", 1)
	if _, ok := h.Next(); ok {
		t.Fatalf("expected exhaustion")
	}
}

// TestBackwardSeekLeavesOtherScannersUntouched reproduces: with current
// holding row c and the heap holding row b, backwardSeek((b,max)) must
// make b the next emission and leave the c-scanner pushed back intact.
func TestBackwardSeekLeavesOtherScannersUntouched(t *testing.T) {
	s1 := NewReverseOnlyMemScanner([]cell.Cell{rc("c", 2)})
	s2 := NewReverseOnlyMemScanner([]cell.Cell{rc("b", 1)})
	h := NewReversed(s1, s2)

	if !h.BackwardSeek(rc("b", math.MaxInt64)) {
		t.Fatalf("expected backwardSeek to find a position")
	}
	got, ok := h.Next()
	wantCell(t, got, ok, "b", 1)
	got, ok = h.Next()
	wantCell(t, got, ok, "c", 2)
	if _, ok := h.Next(); ok {
		t.Fatalf("expected exhaustion")
	}
}

func TestReversedHeapForwardOpsAreIllegalState(t *testing.T) {
	h := NewReversed(NewReverseOnlyMemScanner([]cell.Cell{rc("a", 1)}))
	if _, err := h.Seek(rc("a", 1)); err != ErrIllegalState {
		t.Fatalf("expected ErrIllegalState from Seek, got %v", err)
	}
	if _, err := h.Reseek(rc("a", 1)); err != ErrIllegalState {
		t.Fatalf("expected ErrIllegalState from Reseek, got %v", err)
	}
	if _, err := h.RequestSeek(rc("a", 1), nil); err != ErrIllegalState {
		t.Fatalf("expected ErrIllegalState from RequestSeek, got %v", err)
	}
}

func TestReversedHeapSeekToLastRowUnsupported(t *testing.T) {
	h := NewReversed(NewReverseOnlyMemScanner([]cell.Cell{rc("a", 1)}))
	if _, err := h.SeekToLastRow(); err != ErrUnsupported {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestPendingCloseNeverOverlapsHeapOrCurrent(t *testing.T) {
	s1 := NewReverseOnlyMemScanner([]cell.Cell{rc("b", 1)})
	s2 := NewReverseOnlyMemScanner([]cell.Cell{rc("a", 1)})
	h := NewReversed(s1, s2)
	for {
		if _, ok := h.Next(); !ok {
			break
		}
	}
	closed := h.DrainPendingClose()
	if len(closed) != 2 {
		t.Fatalf("expected both scanners in pendingClose once exhausted, got %d", len(closed))
	}
	if h.current != nil {
		t.Fatalf("expected current to be nil once exhausted")
	}
	if h.heap.Len() != 0 {
		t.Fatalf("expected heap to be empty once exhausted")
	}
}

func TestEmptyReversedHeap(t *testing.T) {
	h := NewReversed()
	if _, ok := h.Peek(); ok {
		t.Fatalf("expected empty heap to report exhaustion")
	}
	if _, ok := h.Next(); ok {
		t.Fatalf("expected empty heap to report exhaustion on Next")
	}
}

func TestAssertNoOverlapHoldsThroughoutScan(t *testing.T) {
	s1 := NewReverseOnlyMemScanner([]cell.Cell{rc("c", 2), rc("a", 1)})
	s2 := NewReverseOnlyMemScanner([]cell.Cell{rc("b", 1)})
	h := NewReversed(s1, s2)
	if !h.AssertNoOverlap() {
		t.Fatalf("expected no overlap right after construction")
	}
	for {
		if _, ok := h.Next(); !ok {
			break
		}
		if !h.AssertNoOverlap() {
			t.Fatalf("expected current, heap and pendingClose to stay disjoint after Next")
		}
	}
}

func TestTraceRecordsTransitionsWhenEnabled(t *testing.T) {
	orig := settings.Current.TraceScans
	settings.Current.TraceScans = true
	defer func() { settings.Current.TraceScans = orig }()

	s1 := NewReverseOnlyMemScanner([]cell.Cell{rc("c", 2), rc("a", 1)})
	s2 := NewReverseOnlyMemScanner([]cell.Cell{rc("b", 1)})
	h := NewReversed(s1, s2)
	for {
		if _, ok := h.Next(); !ok {
			break
		}
	}
	h.DrainPendingClose()

	events := h.Trace()
	if len(events) == 0 {
		t.Fatalf("expected trace events once TraceScans was enabled")
	}
	var sawDrain bool
	for _, e := range events {
		if e.Kind == "drain" {
			sawDrain = true
		}
	}
	if !sawDrain {
		t.Fatalf("expected a drain event among %v", events)
	}
}

func TestTraceStaysEmptyWhenDisabled(t *testing.T) {
	orig := settings.Current.TraceScans
	settings.Current.TraceScans = false
	defer func() { settings.Current.TraceScans = orig }()

	h := NewReversed(NewReverseOnlyMemScanner([]cell.Cell{rc("a", 1)}))
	h.Next()
	if events := h.Trace(); len(events) != 0 {
		t.Fatalf("expected no trace events while TraceScans was disabled, got %v", events)
	}
}

func TestPollRealKVPanicsWhenShadowBudgetExceeded(t *testing.T) {
	orig := settings.Current.ShadowCellBudget
	settings.Current.ShadowCellBudget = 1
	defer func() { settings.Current.ShadowCellBudget = orig }()

	s := &shadowMemScanner{
		MemScanner: NewReverseOnlyMemScanner([]cell.Cell{rc("c", 2), rc("b", 1), rc("a", 1)}),
		shadow:     []bool{true, true, false},
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic once consecutive shadow skips exceeded the budget")
		}
	}()
	NewReversed(s)
}

func TestPollRealKVUnboundedWhenBudgetIsZero(t *testing.T) {
	orig := settings.Current.ShadowCellBudget
	settings.Current.ShadowCellBudget = 0
	defer func() { settings.Current.ShadowCellBudget = orig }()

	s := &shadowMemScanner{
		MemScanner: NewReverseOnlyMemScanner([]cell.Cell{rc("c", 2), rc("b", 1), rc("a", 1)}),
		shadow:     []bool{true, true, false},
	}
	h := NewReversed(s)
	got, ok := h.Peek()
	wantCell(t, got, ok, "a", 1)
}
