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

// Package settings holds process-wide tunables for the cell store and
// scan machinery, plus the exit-hook registration used to release
// resources (trace output, watchers) cleanly.
package settings

import "github.com/dc0d/onexit"

// PublishFence values select the mechanism registry.StoreRegistry uses
// to make a new generation visible to readers.
const (
	// PublishFenceReleaseAcquire publishes via an atomic.Pointer swap
	// (NonLockingReadMap): readers never block, at the cost of a full
	// map rebuild on every publish.
	PublishFenceReleaseAcquire = "release-acquire"
	// PublishFenceMutex publishes under a sync.RWMutex: cheaper writes,
	// at the cost of readers briefly blocking a concurrent publish.
	PublishFenceMutex = "mutex"
)

// Settings are the tunables a deployment adjusts at startup; nothing in
// this package mutates them afterwards.
type Settings struct {
	TraceScans       bool   // append every ReversedScanHeap transition to its ring buffer
	TracePrint       bool
	HasTags          bool   // whether cell slots carry a tags trailer on disk
	MaxScanFanout    int    // ceiling on scanners merged by one heap instance; NewForward and NewReversed do not read it
	ShadowCellBudget int    // pollRealKV panics after skipping this many shadow cells in a row; 0 means unbounded
	PublishFence     string // PublishFenceReleaseAcquire or PublishFenceMutex
}

// Current holds the active settings, defaulting to the values a single
// in-memory node would run with.
var Current = Settings{
	TraceScans:       false,
	TracePrint:       false,
	HasTags:          false,
	MaxScanFanout:    32,
	ShadowCellBudget: 10000,
	PublishFence:     PublishFenceReleaseAcquire,
}

// Init registers onShutdown (closing watchers, flushing trace output) to
// run on process exit, mirroring how a long-running scan session's
// cleanup is tied to the process lifetime rather than a single request.
func Init(onShutdown func()) {
	if onShutdown != nil {
		onexit.Register(onShutdown)
	}
}
