package flatmap

import (
	"testing"

	"github.com/coldshard/memstore/cell"
	"github.com/coldshard/memstore/cellstore"
)

func c(row string, ts int64) cell.Cell {
	return cell.New([]byte(row), []byte("f"), []byte("q"), ts, cell.Put, nil)
}

func buildMap(cells ...cell.Cell) *FlatCellMap {
	return New(cellstore.NewArray(cells))
}

func mustCell(t *testing.T, got cell.Cell, ok bool, wantRow string, wantTS int64) {
	t.Helper()
	if !ok {
		t.Fatalf("expected a result, got none")
	}
	if string(got.Row) != wantRow || got.Timestamp != wantTS {
		t.Fatalf("got (%s,%d), want (%s,%d)", got.Row, got.Timestamp, wantRow, wantTS)
	}
}

func mustAbsent(t *testing.T, _ cell.Cell, ok bool) {
	t.Helper()
	if ok {
		t.Fatalf("expected no result")
	}
}

func sample() *FlatCellMap {
	return buildMap(c("a", 2), c("a", 1), c("b", 3), c("c", 1))
}

func TestFirstLastKeyAscending(t *testing.T) {
	m := sample()
	f, ok := m.FirstKey()
	mustCell(t, f, ok, "a", 2)
	l, ok := m.LastKey()
	mustCell(t, l, ok, "c", 1)
}

func TestFirstLastKeyDescending(t *testing.T) {
	m := sample().DescendingMap()
	f, ok := m.FirstKey()
	mustCell(t, f, ok, "c", 1)
	l, ok := m.LastKey()
	mustCell(t, l, ok, "a", 2)
}

func TestFloorCeilingAscendingExactMatch(t *testing.T) {
	m := sample()
	got, ok := m.FloorKey(c("b", 3))
	mustCell(t, got, ok, "b", 3)
	got, ok = m.CeilingKey(c("b", 3))
	mustCell(t, got, ok, "b", 3)
}

// Reproduces the worked descending-view example: store (a,2)(a,1)(b,3)(c,1),
// needle (b,2) — which sorts strictly between (b,3) and (c,1) under the
// total order — must resolve to floorKey == (c,1) in a descending view.
func TestFloorKeyDescendingMatchesAscendingCeiling(t *testing.T) {
	m := sample().DescendingMap()
	got, ok := m.FloorKey(c("b", 2))
	mustCell(t, got, ok, "c", 1)
}

func TestCeilingKeyDescendingMatchesAscendingFloor(t *testing.T) {
	m := sample().DescendingMap()
	got, ok := m.CeilingKey(c("b", 2))
	mustCell(t, got, ok, "b", 3)
}

func TestLowerHigherKeyAscending(t *testing.T) {
	m := sample()
	got, ok := m.LowerKey(c("b", 3))
	mustCell(t, got, ok, "a", 1)
	got, ok = m.HigherKey(c("b", 3))
	mustCell(t, got, ok, "c", 1)
}

func TestLowerHigherKeyDescending(t *testing.T) {
	m := sample().DescendingMap()
	got, ok := m.LowerKey(c("b", 3))
	mustCell(t, got, ok, "c", 1)
	got, ok = m.HigherKey(c("b", 3))
	mustCell(t, got, ok, "a", 1)
}

func TestFloorCeilingOutOfRange(t *testing.T) {
	m := sample()
	_, ok := m.FloorKey(c("0", 0))
	mustAbsent(t, cell.Cell{}, ok)
	_, ok = m.CeilingKey(c("z", 0))
	mustAbsent(t, cell.Cell{}, ok)
}

func TestContainsKeyAndGet(t *testing.T) {
	m := sample()
	if !m.ContainsKey(c("b", 3)) {
		t.Fatalf("expected (b,3) to be present")
	}
	if m.ContainsKey(c("b", 2)) {
		t.Fatalf("expected (b,2) to be absent")
	}
	got, ok := m.Get(c("a", 1))
	mustCell(t, got, ok, "a", 1)
	_, ok = m.Get(c("a", 9))
	mustAbsent(t, cell.Cell{}, ok)
}

func TestSubMapAscendingInclusiveExclusive(t *testing.T) {
	m := sample()
	sub := m.SubMap(c("a", 1), true, c("c", 1), false)
	vals := sub.Values()
	if len(vals) != 2 {
		t.Fatalf("expected 2 cells, got %d: %v", len(vals), vals)
	}
	mustEqualCell(t, vals[0], "a", 1)
	mustEqualCell(t, vals[1], "b", 3)
}

func TestSubMapAscendingBothInclusive(t *testing.T) {
	m := sample()
	sub := m.SubMap(c("a", 1), true, c("c", 1), true)
	vals := sub.Values()
	if len(vals) != 3 {
		t.Fatalf("expected 3 cells, got %d: %v", len(vals), vals)
	}
	mustEqualCell(t, vals[len(vals)-1], "c", 1)
}

func TestSubMapDescendingMirrorsAscending(t *testing.T) {
	asc := sample()
	desc := asc.DescendingMap()
	// fromKey is the largest bound seen first in a descending walk.
	sub := desc.SubMap(c("c", 1), true, c("a", 1), true)
	vals := sub.Values()
	if len(vals) != 3 {
		t.Fatalf("expected 3 cells, got %d: %v", len(vals), vals)
	}
	mustEqualCell(t, vals[0], "c", 1)
	mustEqualCell(t, vals[len(vals)-1], "a", 1)
}

func TestHeadTailMapAscending(t *testing.T) {
	m := sample()
	head := m.HeadMap(c("b", 3), false)
	if head.Size() != 2 {
		t.Fatalf("expected head size 2, got %d", head.Size())
	}
	tail := m.TailMap(c("b", 3), true)
	if tail.Size() != 2 {
		t.Fatalf("expected tail size 2, got %d", tail.Size())
	}
}

func TestHeadTailMapDescending(t *testing.T) {
	desc := sample().DescendingMap()
	// HeadMap on a descending view walks from the largest value downward,
	// so toKey=(b,3) exclusive drops (b,3) and everything below it.
	head := desc.HeadMap(c("b", 3), false)
	if head.Size() != 1 {
		t.Fatalf("expected head size 1, got %d", head.Size())
	}
	mustEqualCell(t, head.Values()[0], "c", 1)

	tail := desc.TailMap(c("b", 3), true)
	if tail.Size() != 3 {
		t.Fatalf("expected tail size 3, got %d", tail.Size())
	}
}

func TestDescendingMapRoundTrip(t *testing.T) {
	m := sample()
	twice := m.DescendingMap().DescendingMap()
	if twice.Descending() != m.Descending() {
		t.Fatalf("expected orientation to round-trip")
	}
	if twice.Size() != m.Size() {
		t.Fatalf("expected size to round-trip")
	}
}

func TestValuesOrientation(t *testing.T) {
	m := sample()
	asc := m.Values()
	desc := m.DescendingMap().Values()
	if len(asc) != len(desc) {
		t.Fatalf("length mismatch")
	}
	for i := range asc {
		if string(asc[i].Row) != string(desc[len(desc)-1-i].Row) || asc[i].Timestamp != desc[len(desc)-1-i].Timestamp {
			t.Fatalf("expected reversed order at %d", i)
		}
	}
}

func TestEmptyMap(t *testing.T) {
	m := New(cellstore.Empty())
	if !m.IsEmpty() {
		t.Fatalf("expected empty map")
	}
	_, ok := m.FirstKey()
	mustAbsent(t, cell.Cell{}, ok)
	_, ok = m.FloorKey(c("a", 1))
	mustAbsent(t, cell.Cell{}, ok)
}

func TestUnsupportedOperations(t *testing.T) {
	m := sample()
	if err := m.Put(c("z", 1)); err != ErrUnsupported {
		t.Fatalf("expected ErrUnsupported from Put, got %v", err)
	}
	if err := m.Remove(c("a", 1)); err != ErrUnsupported {
		t.Fatalf("expected ErrUnsupported from Remove, got %v", err)
	}
	if err := m.Clear(); err != ErrUnsupported {
		t.Fatalf("expected ErrUnsupported from Clear, got %v", err)
	}
	if _, err := m.PollFirstEntry(); err != ErrUnsupported {
		t.Fatalf("expected ErrUnsupported from PollFirstEntry, got %v", err)
	}
	if _, err := m.PollLastEntry(); err != ErrUnsupported {
		t.Fatalf("expected ErrUnsupported from PollLastEntry, got %v", err)
	}
}

func TestStatsReportsSizeAndOrientation(t *testing.T) {
	m := sample()
	s := m.Stats()
	if s.Size != 4 || s.Descending {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.ByteSize <= 0 {
		t.Fatalf("expected positive byte size, got %d", s.ByteSize)
	}
	if s.String() == "" {
		t.Fatalf("expected non-empty stats string")
	}
}

func mustEqualCell(t *testing.T, got cell.Cell, wantRow string, wantTS int64) {
	t.Helper()
	if string(got.Row) != wantRow || got.Timestamp != wantTS {
		t.Fatalf("got (%s,%d), want (%s,%d)", got.Row, got.Timestamp, wantRow, wantTS)
	}
}
