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
	"encoding/binary"
	"fmt"

	"github.com/coldshard/memstore/cell"
)

// EncodeCell writes one cell slot in the on-disk wire layout:
//
//	4-byte key-length, 4-byte value-length, 2-byte row-length, row-bytes,
//	1-byte family-length, family-bytes, qualifier-bytes (to key-end minus
//	8 bytes timestamp minus 1 byte type), 8-byte timestamp, 1-byte type,
//	value-bytes, optional 4-byte tags-length + tags-bytes.
//
// All integers are big-endian. This layout is required only at the
// boundary where an external on-disk reader hands bytes to a byte-region
// Store; it is not used by Array.
func EncodeCell(c cell.Cell) []byte {
	rowLen := len(c.Row)
	famLen := len(c.Family)
	qualLen := len(c.Qualifier)
	keyLen := 2 + rowLen + 1 + famLen + qualLen + 8 + 1
	valLen := len(c.Value)

	hasTags := c.Tags != nil
	size := 4 + 4 + keyLen + valLen
	if hasTags {
		size += 4 + len(c.Tags)
	}

	buf := make([]byte, size)
	off := 0
	binary.BigEndian.PutUint32(buf[off:], uint32(keyLen))
	off += 4
	binary.BigEndian.PutUint32(buf[off:], uint32(valLen))
	off += 4
	binary.BigEndian.PutUint16(buf[off:], uint16(rowLen))
	off += 2
	copy(buf[off:], c.Row)
	off += rowLen
	buf[off] = byte(famLen)
	off++
	copy(buf[off:], c.Family)
	off += famLen
	copy(buf[off:], c.Qualifier)
	off += qualLen
	binary.BigEndian.PutUint64(buf[off:], uint64(c.Timestamp))
	off += 8
	buf[off] = byte(c.CellType)
	off++
	copy(buf[off:], c.Value)
	off += valLen
	if hasTags {
		binary.BigEndian.PutUint32(buf[off:], uint32(len(c.Tags)))
		off += 4
		copy(buf[off:], c.Tags)
		off += len(c.Tags)
	}
	return buf[:off]
}

// DecodeCell parses one cell slot from buf and returns the cell plus the
// number of bytes consumed. hasTags tells the decoder whether a
// tags-length/tags-bytes trailer follows the value (the layout has no
// self-describing flag for this, so the caller — which knows its own
// on-disk format version — must say).
func DecodeCell(buf []byte, hasTags bool) (cell.Cell, int, error) {
	if len(buf) < 10 {
		return cell.Cell{}, 0, fmt.Errorf("cellstore: buffer too short for cell header: %d bytes", len(buf))
	}
	keyLen := int(binary.BigEndian.Uint32(buf[0:4]))
	valLen := int(binary.BigEndian.Uint32(buf[4:8]))
	off := 8
	if off+2 > len(buf) {
		return cell.Cell{}, 0, fmt.Errorf("cellstore: truncated row length")
	}
	rowLen := int(binary.BigEndian.Uint16(buf[off:]))
	off += 2
	if rowLen < 0 || off+rowLen > len(buf) {
		return cell.Cell{}, 0, fmt.Errorf("cellstore: truncated row")
	}
	row := buf[off : off+rowLen]
	off += rowLen
	if off+1 > len(buf) {
		return cell.Cell{}, 0, fmt.Errorf("cellstore: truncated family length")
	}
	famLen := int(buf[off])
	off++
	if off+famLen > len(buf) {
		return cell.Cell{}, 0, fmt.Errorf("cellstore: truncated family")
	}
	family := buf[off : off+famLen]
	off += famLen

	qualLen := keyLen - 2 - rowLen - 1 - famLen - 8 - 1
	if qualLen < 0 || off+qualLen > len(buf) {
		return cell.Cell{}, 0, fmt.Errorf("cellstore: corrupt key length implies negative qualifier length")
	}
	qualifier := buf[off : off+qualLen]
	off += qualLen

	if off+9 > len(buf) {
		return cell.Cell{}, 0, fmt.Errorf("cellstore: truncated timestamp/type")
	}
	ts := int64(binary.BigEndian.Uint64(buf[off:]))
	off += 8
	typ := cell.Type(buf[off])
	off++

	if off+valLen > len(buf) {
		return cell.Cell{}, 0, fmt.Errorf("cellstore: truncated value")
	}
	value := buf[off : off+valLen]
	off += valLen

	var tags []byte
	if hasTags {
		if off+4 > len(buf) {
			return cell.Cell{}, 0, fmt.Errorf("cellstore: truncated tags length")
		}
		tagsLen := int(binary.BigEndian.Uint32(buf[off:]))
		off += 4
		if tagsLen < 0 || off+tagsLen > len(buf) {
			return cell.Cell{}, 0, fmt.Errorf("cellstore: truncated tags")
		}
		tags = buf[off : off+tagsLen]
		off += tagsLen
	}

	c := cell.New(row, family, qualifier, ts, typ, value)
	c.Tags = tags
	return c, off, nil
}
