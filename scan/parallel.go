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

import (
	"fmt"
	"runtime/debug"

	"github.com/jtolds/gls"
)

type buildError struct {
	r     interface{}
	stack string
}

func (b buildError) Error() string {
	return fmt.Sprint(b.r) + "\n" + b.stack
}

// BuildScanners runs each open function on its own goroutine-local-storage
// goroutine (gls.Go, so any tracing context a caller stashed via gls.Values
// survives into the opener) and collects the resulting ScannerPorts in the
// same order as opens. Useful when each opener does its own I/O (reading a
// byte region, decoding a delta index snapshot) and the fan-out should not
// block on the slowest source one at a time.
//
// A panicking opener is converted into an error rather than crashing the
// caller, mirroring how a failed shard scan is reported back over a channel
// instead of taking down the whole scan.
func BuildScanners(opens ...func() (ScannerPort, error)) ([]ScannerPort, error) {
	out := make([]ScannerPort, len(opens))
	errs := make(chan error, len(opens))

	for i, open := range opens {
		i, open := i, open
		gls.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					errs <- buildError{r, string(debug.Stack())}
					return
				}
			}()
			s, err := open()
			if err != nil {
				errs <- err
				return
			}
			out[i] = s
			errs <- nil
		})
	}

	for range opens {
		if err := <-errs; err != nil {
			return nil, err
		}
	}
	return out, nil
}
