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
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/coldshard/memstore/cell"
)

// BuildArrays sorts each raw batch and wraps it in an Array, one per
// batch, building all of them concurrently. Batches are not validated,
// so the returned error is always nil; the returned slice has the same
// length and order as batches.
//
// Batches are independent: ingestion typically hands one unsorted
// batch per shard, and sorting N batches concurrently is strictly
// faster than doing it on the caller's goroutine one at a time.
func BuildArrays(ctx context.Context, batches [][]cell.Cell) ([]*Array, error) {
	out := make([]*Array, len(batches))
	g, _ := errgroup.WithContext(ctx)
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			sorted := make([]cell.Cell, len(batch))
			copy(sorted, batch)
			sort.Slice(sorted, func(a, b int) bool { return cell.Compare(sorted[a], sorted[b]) < 0 })
			out[i] = NewArray(sorted)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
