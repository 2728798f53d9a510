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

package cell

import "bytes"

// Compare implements the total order: row asc, family asc, qualifier asc,
// timestamp desc, type asc, sequence-id desc. Every binary search and every
// heap comparator in this module goes through this one routine so the
// ordering is defined in exactly one place.
func Compare(a, b Cell) int {
	if c := bytes.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	if c := bytes.Compare(a.Family, b.Family); c != 0 {
		return c
	}
	if c := bytes.Compare(a.Qualifier, b.Qualifier); c != 0 {
		return c
	}
	// timestamp descending: newer first
	if a.Timestamp != b.Timestamp {
		if a.Timestamp > b.Timestamp {
			return -1
		}
		return 1
	}
	if a.CellType != b.CellType {
		if a.CellType < b.CellType {
			return -1
		}
		return 1
	}
	// sequence-id descending: newer first
	if a.SequenceID != b.SequenceID {
		if a.SequenceID > b.SequenceID {
			return -1
		}
		return 1
	}
	return 0
}

// CompareRows orders by row only, ignoring every other field.
func CompareRows(a, b Cell) int {
	return bytes.Compare(a.Row, b.Row)
}

// MatchingRows reports whether a and b share the same row.
func MatchingRows(a, b Cell) bool {
	return CompareRows(a, b) == 0
}

// Less is a convenience wrapper for sort.Slice-style callers.
func Less(a, b Cell) bool {
	return Compare(a, b) < 0
}
