package cellstore

import (
	"bytes"
	"testing"

	"github.com/coldshard/memstore/cell"
)

func TestEncodeDecodeCellRoundTrip(t *testing.T) {
	c := cell.New([]byte("row1"), []byte("f"), []byte("qual"), 42, cell.Put, []byte("value"))
	buf := EncodeCell(c)
	got, n, err := DecodeCell(buf, false)
	if err != nil {
		t.Fatalf("DecodeCell: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("expected to consume %d bytes, consumed %d", len(buf), n)
	}
	if !bytes.Equal(got.Row, c.Row) || !bytes.Equal(got.Family, c.Family) || !bytes.Equal(got.Qualifier, c.Qualifier) {
		t.Fatalf("key fields mismatch: got %+v want %+v", got, c)
	}
	if got.Timestamp != c.Timestamp || got.CellType != c.CellType {
		t.Fatalf("ts/type mismatch: got %+v want %+v", got, c)
	}
	if !bytes.Equal(got.Value, c.Value) {
		t.Fatalf("value mismatch: got %q want %q", got.Value, c.Value)
	}
}

func TestEncodeDecodeCellWithTags(t *testing.T) {
	c := cell.New([]byte("r"), []byte("f"), []byte("q"), 1, cell.Delete, nil)
	c.Tags = []byte("tag-data")
	buf := EncodeCell(c)
	got, n, err := DecodeCell(buf, true)
	if err != nil {
		t.Fatalf("DecodeCell: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("expected to consume all %d bytes, consumed %d", len(buf), n)
	}
	if !bytes.Equal(got.Tags, c.Tags) {
		t.Fatalf("tags mismatch: got %q want %q", got.Tags, c.Tags)
	}
}

func TestByteRegionMatchesArray(t *testing.T) {
	cells := []cell.Cell{
		cell.New([]byte("a"), []byte("f"), []byte("q"), 2, cell.Put, []byte("v1")),
		cell.New([]byte("a"), []byte("f"), []byte("q"), 1, cell.Put, []byte("v2")),
		cell.New([]byte("b"), []byte("f"), []byte("q"), 3, cell.Put, []byte("v3")),
	}
	var buf bytes.Buffer
	for _, c := range cells {
		buf.Write(EncodeCell(c))
	}
	region, err := NewByteRegion(buf.Bytes(), false)
	if err != nil {
		t.Fatalf("NewByteRegion: %v", err)
	}
	if region.Len() != len(cells) {
		t.Fatalf("expected %d slots, got %d", len(cells), region.Len())
	}
	for i, want := range cells {
		got := region.Get(i)
		if !bytes.Equal(got.Row, want.Row) || got.Timestamp != want.Timestamp || !bytes.Equal(got.Value, want.Value) {
			t.Fatalf("slot %d: got %+v want %+v", i, got, want)
		}
	}
}

func TestEmptyAndSingleStores(t *testing.T) {
	e := Empty()
	if e.Len() != 0 {
		t.Fatalf("expected empty store to have length 0, got %d", e.Len())
	}
	c := cell.New([]byte("r"), []byte("f"), []byte("q"), 1, cell.Put, nil)
	s := Single(c)
	if s.Len() != 1 {
		t.Fatalf("expected single store to have length 1, got %d", s.Len())
	}
	if !bytes.Equal(s.Get(0).Row, c.Row) {
		t.Fatalf("single store returned wrong cell")
	}
}
