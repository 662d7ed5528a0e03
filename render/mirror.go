// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/mcubes/mesh"
)

// ErrStale is returned by Draw on a mirror whose source changed since the
// last refresh.
var ErrStale = errors.New("render: mirror is stale")

// Mirror is the renderer-side copy of one arena.
//
// A mirror never reads its source on its own. The owner marks it stale once
// the source holds new, complete geometry and then calls RefreshIfStale to
// copy the data over. Draw refuses to run while the mirror is stale, so a
// frame never shows half-copied geometry.
//
// Mirrors are not safe for concurrent use; they belong to the consumer's
// goroutine.
type Mirror interface {
	// SetSource binds the arena to copy from and marks the mirror stale.
	SetSource(a *mesh.Arena)

	// MarkStale flags the mirror for the next RefreshIfStale.
	MarkStale()

	// RefreshIfStale copies the source when the mirror is stale and reports
	// whether a copy happened. A failed copy leaves the mirror stale.
	RefreshIfStale() bool

	// IsStale reports whether the mirror awaits a refresh.
	IsStale() bool

	// Draw issues the draw for the mirrored geometry.
	// It returns ErrStale without drawing when the mirror is stale.
	Draw() error

	// Release frees renderer resources. The mirror must not be used after.
	Release()
}

// DrawFunc receives the mirrored geometry of a CPUMirror on each Draw.
// normals is nil when the source carries none.
type DrawFunc func(vertices, normals []float32, indices []uint32) error

// CPUMirror mirrors an arena into a private snapshot in system memory.
// It is the default mirror for headless use and tests.
type CPUMirror struct {
	src   *mesh.Arena
	snap  *mesh.Arena
	stale bool
	draw  DrawFunc

	refreshes int
	draws     int
}

// NewCPUMirror creates a mirror that calls fn on each Draw. fn may be nil.
func NewCPUMirror(fn DrawFunc) *CPUMirror {
	return &CPUMirror{draw: fn}
}

// SetSource implements Mirror.
func (m *CPUMirror) SetSource(a *mesh.Arena) {
	m.src = a
	m.stale = true
}

// MarkStale implements Mirror.
func (m *CPUMirror) MarkStale() { m.stale = true }

// IsStale implements Mirror.
func (m *CPUMirror) IsStale() bool { return m.stale }

// RefreshIfStale implements Mirror.
func (m *CPUMirror) RefreshIfStale() bool {
	if !m.stale || m.src == nil {
		return false
	}
	if m.snap == nil || !m.snap.CopyFrom(m.src) {
		m.snap = m.src.Clone()
	}
	m.stale = false
	m.refreshes++
	return true
}

// Draw implements Mirror.
func (m *CPUMirror) Draw() error {
	if m.stale {
		return ErrStale
	}
	m.draws++
	if m.draw == nil || m.snap == nil {
		return nil
	}
	return m.draw(m.snap.Vertices(), m.snap.Normals(), m.snap.Indices())
}

// Release implements Mirror.
func (m *CPUMirror) Release() {
	m.src = nil
	m.snap = nil
}

// Snapshot returns the geometry as of the last refresh, or nil before the
// first one. The arena is owned by the mirror.
func (m *CPUMirror) Snapshot() *mesh.Arena { return m.snap }

// Refreshes returns the number of completed refreshes.
func (m *CPUMirror) Refreshes() int { return m.refreshes }

// Draws returns the number of draws issued.
func (m *CPUMirror) Draws() int { return m.draws }
