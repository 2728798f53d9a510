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

import "errors"

// ErrUnsupported is returned by operations a particular scanner or heap
// never implements (a forward-only scanner's SeekToPreviousRow, a
// reverse heap's seekToLastRow).
var ErrUnsupported = errors.New("scan: unsupported operation")

// ErrIllegalState is returned when a caller drives a ReversedScanHeap
// with a forward-only operation (seek, reseek, requestSeek).
var ErrIllegalState = errors.New("scan: illegal state")
