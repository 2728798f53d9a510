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

package cellstore

import (
	"strconv"

	"github.com/coldshard/memstore/cell"
)

// ByteRegion is a Store backed by one contiguous encoded byte buffer plus
// a slot-offset index, the byte-backed sibling of Array. Decoding happens
// lazily on Get, so construction cost is one linear scan to find slot
// boundaries, not N allocations.
type ByteRegion struct {
	buf     []byte
	offsets []int // offsets[i] is the start of slot i; len(offsets) == N
	hasTags bool
}

// NewByteRegion scans buf once to build the slot-offset index. buf must
// already hold cells in cell.Compare order — ByteRegion never sorts.
func NewByteRegion(buf []byte, hasTags bool) (*ByteRegion, error) {
	var offsets []int
	off := 0
	for off < len(buf) {
		offsets = append(offsets, off)
		_, n, err := DecodeCell(buf[off:], hasTags)
		if err != nil {
			return nil, err
		}
		off += n
	}
	return &ByteRegion{buf: buf, offsets: offsets, hasTags: hasTags}, nil
}

func (b *ByteRegion) Len() int { return len(b.offsets) }

func (b *ByteRegion) Get(i int) cell.Cell {
	c, _, err := DecodeCell(b.buf[b.offsets[i]:], b.hasTags)
	if err != nil {
		panic("cellstore: corrupt byte region at slot " + strconv.Itoa(i) + ": " + err.Error())
	}
	return c
}

func (b *ByteRegion) ByteSize() int64 { return int64(len(b.buf)) }
