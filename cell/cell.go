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

// Package cell defines the Cell tuple and its total order.
package cell

// Type tags the kind of mutation a Cell records. Order here fixes the
// "type-tag in a fixed enum order" leg of the comparator.
type Type uint8

const (
	Put Type = iota
	Delete
	DeleteColumn
	DeleteFamily
	DeleteFamilyVersion
)

func (t Type) String() string {
	switch t {
	case Put:
		return "Put"
	case Delete:
		return "Delete"
	case DeleteColumn:
		return "DeleteColumn"
	case DeleteFamily:
		return "DeleteFamily"
	case DeleteFamilyVersion:
		return "DeleteFamilyVersion"
	default:
		return "Unknown"
	}
}

// Cell is an immutable row/family/qualifier/timestamp/type tuple. Key and
// value refer to the same tuple; Value and the key fields never diverge.
type Cell struct {
	Row          []byte
	Family       []byte
	Qualifier    []byte
	Timestamp    int64
	CellType     Type
	Value        []byte
	Tags         []byte // optional, nil if absent
	SequenceID   uint64
}

// New builds a Cell. Slices are kept by reference, not copied: callers own
// their immutability once a Cell is handed to a CellStore.
func New(row, family, qualifier []byte, timestamp int64, typ Type, value []byte) Cell {
	return Cell{Row: row, Family: family, Qualifier: qualifier, Timestamp: timestamp, CellType: typ, Value: value}
}

// WithTags returns a copy of c carrying tags and a sequence id, the way a
// write path stamps a cell right before it enters a CellStore.
func (c Cell) WithTags(tags []byte, seq uint64) Cell {
	c.Tags = tags
	c.SequenceID = seq
	return c
}

// ByteSize is a best-effort memory/byte footprint for c, shared by the
// Array and single-entry Stores and by flatmap.Stats, which reports map
// size without touching CellStore internals. ByteRegion reports the
// length of its encoded buffer instead.
func (c Cell) ByteSize() int64 {
	return int64(len(c.Row) + len(c.Family) + len(c.Qualifier) + len(c.Value) + len(c.Tags) + 8 /* timestamp */ + 1 /* type */ + 8 /* seq */)
}
