//go:build ceph

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

// Package cephstore loads a flushed cell-store object out of a RADOS
// pool into a read-only cellstore.ByteRegion. Objects are addressed by a
// flat prefix/name scheme, not a filesystem path, since RADOS has no
// directories.
package cephstore

import (
	"fmt"
	"path"
	"sync"

	"github.com/ceph/go-ceph/rados"

	"github.com/coldshard/memstore/cellstore"
)

// Config names the cluster, pool and object a region is read from.
type Config struct {
	UserName    string // e.g. "client.admin"
	ClusterName string // often "ceph"
	ConfFile    string // optional; falls back to CEPH_ARGS/CEPH_CONF
	Pool        string
	Prefix      string
}

// Store holds one lazily-opened RADOS connection, reused across Load calls.
type Store struct {
	cfg Config

	mu     sync.Mutex
	conn   *rados.Conn
	ioctx  *rados.IOContext
	opened bool
}

// New returns a Store for cfg. The RADOS connection is not opened until
// the first Load call.
func New(cfg Config) *Store {
	return &Store{cfg: cfg}
}

func (s *Store) ensureOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opened {
		return nil
	}

	conn, err := rados.NewConnWithClusterAndUser(s.cfg.ClusterName, s.cfg.UserName)
	if err != nil {
		return fmt.Errorf("cephstore: new conn: %w", err)
	}
	if s.cfg.ConfFile != "" {
		if err := conn.ReadConfigFile(s.cfg.ConfFile); err != nil {
			return fmt.Errorf("cephstore: read config file: %w", err)
		}
	} else {
		_ = conn.ReadDefaultConfigFile()
	}
	if err := conn.Connect(); err != nil {
		return fmt.Errorf("cephstore: connect: %w", err)
	}
	ioctx, err := conn.OpenIOContext(s.cfg.Pool)
	if err != nil {
		conn.Shutdown()
		return fmt.Errorf("cephstore: open pool %s: %w", s.cfg.Pool, err)
	}

	s.conn = conn
	s.ioctx = ioctx
	s.opened = true
	return nil
}

func (s *Store) objName(name string) string {
	return path.Join(s.cfg.Prefix, name)
}

// Load reads the RADOS object named name and decodes it into a
// cellstore.ByteRegion. hasTags must match the layout the object was
// written with.
func (s *Store) Load(name string, hasTags bool) (*cellstore.ByteRegion, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	obj := s.objName(name)

	stat, err := s.ioctx.Stat(obj)
	if err != nil {
		return nil, fmt.Errorf("cephstore: stat %s: %w", obj, err)
	}
	buf := make([]byte, stat.Size)
	n, err := s.ioctx.Read(obj, buf, 0)
	if err != nil {
		return nil, fmt.Errorf("cephstore: read %s: %w", obj, err)
	}
	return cellstore.NewByteRegion(buf[:n], hasTags)
}

// Close releases the pooled RADOS connection, if one was opened.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return
	}
	s.ioctx.Destroy()
	s.conn.Shutdown()
	s.opened = false
}
