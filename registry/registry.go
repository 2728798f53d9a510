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

// Package registry publishes FlatCellMap snapshots behind a publication
// fence (a lock-free read map by default, or an RWMutex-guarded map), so
// many goroutines can read the current generation while a new one is
// being built.
package registry

import (
	"sync"

	"github.com/google/uuid"
	nlrm "github.com/launix-de/NonLockingReadMap"

	"github.com/coldshard/memstore/flatmap"
	"github.com/coldshard/memstore/settings"
)

// entry is the KeyGetter NonLockingReadMap requires: a generation id plus
// the FlatCellMap published under it.
type entry struct {
	id string
	m  *flatmap.FlatCellMap
}

// GetKey and ComputeSize use value receivers so entry itself (not just
// *entry) satisfies NonLockingReadMap's KeyGetter constraint.
func (e entry) GetKey() string { return e.id }

func (e entry) ComputeSize() uint {
	if e.m == nil {
		return 0
	}
	return uint(e.m.Stats().ByteSize)
}

// fence is the publication mechanism a StoreRegistry uses to make a new
// generation visible to readers. Both implementations give the same
// happens-before guarantee (a reader that observes a generation id also
// observes the FlatCellMap published under it); they differ only in
// which side pays for that guarantee.
type fence interface {
	set(e entry)
	get(id string) (entry, bool)
	all() []entry
	remove(id string)
}

// atomicFence publishes via NonLockingReadMap's atomic.Pointer swap:
// readers never block, at the cost of rebuilding the backing slice on
// every publish.
type atomicFence struct {
	m nlrm.NonLockingReadMap[entry, string]
}

func newAtomicFence() *atomicFence {
	return &atomicFence{m: nlrm.New[entry, string]()}
}

func (f *atomicFence) set(e entry) { f.m.Set(&e) }

func (f *atomicFence) get(id string) (entry, bool) {
	p := f.m.Get(id)
	if p == nil {
		return entry{}, false
	}
	return *p, true
}

func (f *atomicFence) all() []entry {
	ptrs := f.m.GetAll()
	out := make([]entry, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}

func (f *atomicFence) remove(id string) { f.m.Remove(id) }

// mutexFence publishes under a sync.RWMutex: publishing is a cheap map
// write instead of a full rebuild, at the cost of readers briefly
// blocking a concurrent publish.
type mutexFence struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func newMutexFence() *mutexFence {
	return &mutexFence{entries: make(map[string]entry)}
}

func (f *mutexFence) set(e entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[e.id] = e
}

func (f *mutexFence) get(id string) (entry, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	e, ok := f.entries[id]
	return e, ok
}

func (f *mutexFence) all() []entry {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out
}

func (f *mutexFence) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, id)
}

// StoreRegistry is a published set of FlatCellMap snapshots, each keyed
// by a generation id. Publication is the only write path; readers see a
// consistent snapshot through whichever fence was selected at
// construction time.
type StoreRegistry struct {
	fence fence
}

// New returns an empty StoreRegistry, picking its publication fence from
// settings.Current.PublishFence.
func New() *StoreRegistry {
	if settings.Current.PublishFence == settings.PublishFenceMutex {
		return &StoreRegistry{fence: newMutexFence()}
	}
	return &StoreRegistry{fence: newAtomicFence()}
}

// Publish stores m under a freshly generated id and returns the id, so
// callers (e.g. republish.FlushWatcher) can reference this snapshot
// again or supersede it later.
func (r *StoreRegistry) Publish(m *flatmap.FlatCellMap) string {
	id := uuid.NewString()
	r.fence.set(entry{id: id, m: m})
	return id
}

// Lookup returns the snapshot published under id, if still present.
func (r *StoreRegistry) Lookup(id string) (*flatmap.FlatCellMap, bool) {
	e, ok := r.fence.get(id)
	if !ok {
		return nil, false
	}
	return e.m, true
}

// All returns every currently published snapshot, in no particular
// order.
func (r *StoreRegistry) All() []*flatmap.FlatCellMap {
	entries := r.fence.all()
	out := make([]*flatmap.FlatCellMap, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.m)
	}
	return out
}

// Remove retires the snapshot published under id.
func (r *StoreRegistry) Remove(id string) { r.fence.remove(id) }
