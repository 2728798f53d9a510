package cell

import "testing"

func r(row string, ts int64) Cell {
	return New([]byte(row), []byte("f"), []byte("q"), ts, Put, nil)
}

func TestCompareRowAscending(t *testing.T) {
	a := r("a", 1)
	b := r("b", 1)
	if Compare(a, b) >= 0 {
		t.Fatalf("expected a < b, got %d", Compare(a, b))
	}
	if Compare(b, a) <= 0 {
		t.Fatalf("expected b > a, got %d", Compare(b, a))
	}
}

func TestCompareTimestampDescending(t *testing.T) {
	newer := r("a", 5)
	older := r("a", 2)
	if Compare(newer, older) >= 0 {
		t.Fatalf("expected newer cell to sort before older, got %d", Compare(newer, older))
	}
}

func TestCompareTypeOrder(t *testing.T) {
	put := New([]byte("a"), []byte("f"), []byte("q"), 5, Put, nil)
	del := New([]byte("a"), []byte("f"), []byte("q"), 5, Delete, nil)
	if Compare(put, del) >= 0 {
		t.Fatalf("expected Put before Delete at equal ts, got %d", Compare(put, del))
	}
}

func TestCompareSequenceIDDescending(t *testing.T) {
	newer := New([]byte("a"), []byte("f"), []byte("q"), 5, Put, nil).WithTags(nil, 10)
	older := New([]byte("a"), []byte("f"), []byte("q"), 5, Put, nil).WithTags(nil, 3)
	if Compare(newer, older) >= 0 {
		t.Fatalf("expected higher sequence id to sort first, got %d", Compare(newer, older))
	}
}

func TestCompareRowsIgnoresRest(t *testing.T) {
	a := r("a", 1)
	b := r("a", 99)
	if CompareRows(a, b) != 0 {
		t.Fatalf("expected equal rows to compare equal, got %d", CompareRows(a, b))
	}
	if !MatchingRows(a, b) {
		t.Fatal("expected MatchingRows true for equal rows")
	}
}

func TestCompareFullOrderReflexive(t *testing.T) {
	a := r("x", 1)
	if Compare(a, a) != 0 {
		t.Fatalf("expected Compare(a, a) == 0, got %d", Compare(a, a))
	}
}
