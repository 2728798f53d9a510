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

// Package republish watches a directory for flushed cell-store files and
// atomically republishes each one into a registry.StoreRegistry.
package republish

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/coldshard/memstore/cellstore"
	"github.com/coldshard/memstore/flatmap"
	"github.com/coldshard/memstore/registry"
)

// FlushWatcher republishes every file written under a watched directory
// as a new FlatCellMap generation. It never deletes or rewrites the
// files it reads; it only publishes a read view over them.
type FlushWatcher struct {
	reg     *registry.StoreRegistry
	watcher *fsnotify.Watcher
	hasTags bool
}

// New starts watching dir. hasTags must match the layout the files were
// written with (whether each cell slot carries a tags length+bytes
// trailer).
func New(dir string, reg *registry.StoreRegistry, hasTags bool) (*FlushWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("republish: new watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("republish: watch %s: %w", dir, err)
	}
	return &FlushWatcher{reg: reg, watcher: w, hasTags: hasTags}, nil
}

// Run processes fsnotify events until the watcher is closed. onPublish
// is called with the new generation id (or an error) after each republish
// attempt; it may be nil.
func (fw *FlushWatcher) Run(onPublish func(id string, err error)) {
	for {
		select {
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			id, err := fw.republish(ev.Name)
			if onPublish != nil {
				onPublish(id, err)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			if onPublish != nil {
				onPublish("", err)
			}
		}
	}
}

func (fw *FlushWatcher) republish(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("republish: read %s: %w", path, err)
	}
	region, err := cellstore.NewByteRegion(buf, fw.hasTags)
	if err != nil {
		return "", fmt.Errorf("republish: decode %s: %w", path, err)
	}
	return fw.reg.Publish(flatmap.New(region)), nil
}

// Close stops watching and releases the underlying fsnotify watcher.
func (fw *FlushWatcher) Close() error { return fw.watcher.Close() }
