// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mcubes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/mcubes/field"
	"github.com/gogpu/mcubes/internal/cache"
	"github.com/gogpu/mcubes/march"
	"github.com/gogpu/mcubes/mesh"
)

// sliceKey identifies the geometry of one slice.
type sliceKey struct {
	params Params
	index  int
	count  int
}

func shardOfSlice(k sliceKey) uint64 { return uint64(k.index) }

// Slice is one horizontal band of the volume and the arena holding its
// triangulated surface.
//
// A slice is written only by its worker while armed and read only by the
// orchestrator between batches. It has no locks of its own.
type Slice struct {
	arena   *mesh.Arena
	field   field.Field
	extract Extractor
	cache   *cache.GeometryCache[sliceKey]
	logger  *slog.Logger

	params Params
	index  int
	count  int
	set    bool
}

// NewSlice creates a slice sampling f with march.Triangulate.
func NewSlice(f field.Field) *Slice {
	return newSlice(f, march.Triangulate, nil, nil)
}

func newSlice(f field.Field, e Extractor, c *cache.GeometryCache[sliceKey], l *slog.Logger) *Slice {
	if l == nil {
		l = newNopLogger()
	}
	return &Slice{
		arena:   mesh.NewArena(mesh.Triangles, mesh.Normal),
		field:   f,
		extract: e,
		cache:   c,
		logger:  l,
	}
}

// Update stores new parameters and reports whether they differ from the
// stored ones. The resolution is clamped before comparison. The first call
// always reports a change. The arena is never touched.
//
// p must be finite (see Params.Finite): a NaN field makes every call report
// a change. Update panics unless count >= 1 and 0 <= index < count.
func (s *Slice) Update(p Params, index, count int) bool {
	if count < 1 || index < 0 || index >= count {
		panic(fmt.Sprintf("mcubes: slice %d of %d", index, count))
	}
	p = p.Clamped()
	if s.set && p == s.params && index == s.index && count == s.count {
		return false
	}
	s.params, s.index, s.count, s.set = p, index, count, true
	return true
}

// ZRange returns the half-open range of cell layers [z0, z1) along Z that
// this slice covers. Consecutive slice indices cover consecutive ranges and
// all count slices together cover [0, Cells()).
func (s *Slice) ZRange() (z0, z1 int) {
	if !s.set {
		return 0, 0
	}
	n := s.params.Cells()
	return s.index * n / s.count, (s.index + 1) * n / s.count
}

// Compute regenerates the arena for the stored parameters. index must be
// the index given to the last Update.
//
// The arena is readable between cells: logical counts are updated after
// every cell. Compute checks ctx once per cell layer and returns ctx.Err()
// when it is cancelled, leaving a partial arena.
func (s *Slice) Compute(ctx context.Context, index int) error {
	if !s.set || index != s.index {
		panic(fmt.Sprintf("mcubes: compute slice %d, configured as %d", index, s.index))
	}

	key := sliceKey{s.params, s.index, s.count}
	if s.cache != nil && s.cache.Load(key, s.arena) {
		s.logger.Debug("slice cache hit", "slice", index)
		return nil
	}

	if err := s.march(ctx); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Store(key, s.arena)
	}
	return nil
}

func (s *Slice) march(ctx context.Context) error {
	p := s.params
	n := p.Cells()
	h := p.CellSize()
	origin := -p.Scale / 2
	sample := march.Sampler(s.field.Bind(p.Offset))
	z0, z1 := s.ZRange()

	a := s.arena
	a.Reset()
	a.Resize(n*n*march.MaxPoints/s.count, n*n*march.MaxTriangles/s.count)

	for zi := z0; zi < z1; zi++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		z := origin + float32(zi)*h
		for yi := range n {
			y := origin + float32(yi)*h
			for xi := range n {
				x := origin + float32(xi)*h

				a.Ensure(march.MaxPoints, march.MaxTriangles)
				nv, ni := a.NumVertices(), a.NumIndices()
				tris, pts := s.extract(x, y, z, sample, p.Iso, h,
					a.VertexData(nv), a.NormalData(nv), a.IndexData(ni/3), uint32(nv))
				a.SetNumVertices(nv + pts)
				a.SetNumIndices(ni + 3*tris)
			}
		}
	}
	return nil
}

// Arena returns the slice's geometry. Read it only while the slice's
// worker is not armed.
func (s *Slice) Arena() *mesh.Arena { return s.arena }

// Params returns the stored parameters.
func (s *Slice) Params() Params { return s.params }

// Index returns the stored slice index.
func (s *Slice) Index() int { return s.index }

// SliceInfo summarizes one slice.
type SliceInfo struct {
	Index     int
	ZStart    int
	ZEnd      int
	Vertices  int
	Indices   int
	Triangles int
	Completed uint64

	// Worker is the state of the slice's worker: idle, armed, computing
	// or killed. Empty when the slice is not owned by an orchestrator.
	Worker string
}

// Info returns the slice's range and geometry counts.
func (s *Slice) Info() SliceInfo {
	z0, z1 := s.ZRange()
	return SliceInfo{
		Index:     s.index,
		ZStart:    z0,
		ZEnd:      z1,
		Vertices:  s.arena.NumVertices(),
		Indices:   s.arena.NumIndices(),
		Triangles: s.arena.NumPrimitives(),
	}
}

func (i SliceInfo) String() string {
	str := fmt.Sprintf("slice %d z[%d,%d) #verts %d #indices %d", i.Index, i.ZStart, i.ZEnd, i.Vertices, i.Indices)
	if i.Worker != "" {
		str += " (" + i.Worker + ")"
	}
	return str
}
