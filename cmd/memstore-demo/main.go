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

// memstore-demo builds a couple of in-memory cell generations, publishes
// them to a registry, and runs a reverse scan across them to show the
// whole read path end to end.
package main

import (
	"fmt"

	"github.com/coldshard/memstore/cell"
	"github.com/coldshard/memstore/cellstore"
	"github.com/coldshard/memstore/diagnostics"
	"github.com/coldshard/memstore/flatmap"
	"github.com/coldshard/memstore/registry"
	"github.com/coldshard/memstore/scan"
	"github.com/coldshard/memstore/settings"
)

func main() {
	fmt.Print(`memstore-demo Copyright (C) 2024-2026
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	settings.Current.TraceScans = true
	settings.Init(func() {
		fmt.Println("shutting down")
	})

	reg := registry.New()

	gen1 := mustMap(
		cell.New([]byte("row1"), []byte("cf"), []byte("q"), 100, cell.Put, nil),
		cell.New([]byte("row2"), []byte("cf"), []byte("q"), 100, cell.Put, nil),
		cell.New([]byte("row3"), []byte("cf"), []byte("q"), 100, cell.Put, nil),
	)
	gen2 := mustMap(
		cell.New([]byte("row2"), []byte("cf"), []byte("q"), 200, cell.Put, nil),
		cell.New([]byte("row4"), []byte("cf"), []byte("q"), 200, cell.Put, nil),
	)

	id1 := reg.Publish(gen1)
	id2 := reg.Publish(gen2)
	fmt.Printf("published generations %s, %s\n", id1, id2)

	all := reg.All()
	fmt.Println(diagnostics.Summarize(all))

	s1 := scan.NewReverseOnlyMemScanner(descending(gen1))
	s2 := scan.NewReverseOnlyMemScanner(descending(gen2))
	heap := scan.NewReversed(s1, s2)

	fmt.Println("reverse scan:")
	for {
		if !heap.AssertNoOverlap() {
			panic("memstore-demo: current, heap and pendingClose overlapped")
		}
		c, ok := heap.Next()
		if !ok {
			break
		}
		fmt.Printf("  row=%s ts=%d\n", c.Row, c.Timestamp)
	}

	fmt.Println("heap transitions:")
	for _, ev := range heap.Trace() {
		fmt.Printf("  %s %s\n", ev.Kind, ev.Row)
	}
	for _, s := range heap.DrainPendingClose() {
		_ = s.Close()
	}
}

func mustMap(cells ...cell.Cell) *flatmap.FlatCellMap {
	arr := cellstore.NewArray(cells)
	return flatmap.New(arr)
}

func descending(m *flatmap.FlatCellMap) []cell.Cell {
	return m.DescendingMap().Values()
}
