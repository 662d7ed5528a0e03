// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mcubes

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/mcubes/field"
	"github.com/gogpu/mcubes/internal/cache"
	"github.com/gogpu/mcubes/march"
)

var sphereParams = Params{Scale: 2, Iso: 0.6, Resolution: 3}

// computeSlices computes count slices of p and returns them.
func computeSlices(t *testing.T, p Params, count int) []*Slice {
	t.Helper()
	out := make([]*Slice, count)
	for i := range count {
		s := NewSlice(field.Sphere)
		s.Update(p, i, count)
		if err := s.Compute(context.Background(), i); err != nil {
			t.Fatalf("Compute(%d): %v", i, err)
		}
		out[i] = s
	}
	return out
}

// sortedPoints returns all vertex positions of the slices, sorted.
func sortedPoints(ss []*Slice) [][3]float32 {
	var pts [][3]float32
	for _, s := range ss {
		v := s.Arena().Vertices()
		for i := 0; i < len(v); i += 3 {
			pts = append(pts, [3]float32{v[i], v[i+1], v[i+2]})
		}
	}
	slices.SortFunc(pts, func(a, b [3]float32) int {
		for k := range 3 {
			if a[k] < b[k] {
				return -1
			}
			if a[k] > b[k] {
				return 1
			}
		}
		return 0
	})
	return pts
}

// =============================================================================
// Update Tests
// =============================================================================

func TestSlice_Update(t *testing.T) {
	s := NewSlice(field.Sphere)
	base := Params{Scale: 1, Iso: 0.5, Resolution: 4}

	if !s.Update(base, 0, 4) {
		t.Fatal("first Update() = false")
	}
	if s.Update(base, 0, 4) {
		t.Error("Update() with identical parameters = true")
	}

	tests := []struct {
		name  string
		p     Params
		index int
		count int
	}{
		{"offset", Params{Offset: field.Offset{X: 1}, Scale: 1, Iso: 0.5, Resolution: 4}, 0, 4},
		{"scale", Params{Scale: 2, Iso: 0.5, Resolution: 4}, 0, 4},
		{"iso", Params{Scale: 1, Iso: 0.4, Resolution: 4}, 0, 4},
		{"resolution", Params{Scale: 1, Iso: 0.5, Resolution: 5}, 0, 4},
		{"index", base, 1, 4},
		{"count", base, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !s.Update(tt.p, tt.index, tt.count) {
				t.Errorf("Update() after %s change = false", tt.name)
			}
		})
	}
}

func TestSlice_UpdateClampsResolution(t *testing.T) {
	s := NewSlice(field.Sphere)
	s.Update(Params{Scale: 1, Resolution: 7}, 0, 1)

	if s.Update(Params{Scale: 1, Resolution: 20}, 0, 1) {
		t.Error("resolution 20 differs from 7 after clamping")
	}
	if s.Params().Resolution != MaxResolution {
		t.Errorf("stored resolution = %d", s.Params().Resolution)
	}
	if !s.Update(Params{Scale: 1, Resolution: 0}, 0, 1) || s.Params().Resolution != MinResolution {
		t.Error("resolution 0 not clamped to MinResolution")
	}
}

func TestSlice_UpdateUntouchedArena(t *testing.T) {
	ss := computeSlices(t, sphereParams, 1)
	s := ss[0]
	before := slices.Clone(s.Arena().Vertices())

	s.Update(sphereParams, 0, 1)
	if !slices.Equal(before, s.Arena().Vertices()) {
		t.Error("Update() modified the arena")
	}
}

func TestSlice_UpdatePanics(t *testing.T) {
	tests := []struct {
		name         string
		index, count int
	}{
		{"zero count", 0, 0},
		{"negative index", -1, 2},
		{"index past count", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewSlice(field.Sphere).Update(sphereParams, tt.index, tt.count)
		})
	}
}

// =============================================================================
// Range Tests
// =============================================================================

func TestSlice_ZRangeCoverage(t *testing.T) {
	for _, count := range []int{1, 2, 4, 8} {
		for res := MinResolution; res <= MaxResolution; res++ {
			p := Params{Scale: 1, Resolution: res}
			next := 0
			for i := range count {
				s := NewSlice(field.Sphere)
				s.Update(p, i, count)
				z0, z1 := s.ZRange()
				if z0 != next {
					t.Fatalf("S=%d res=%d slice %d starts at %d, want %d", count, res, i, z0, next)
				}
				if z1 < z0 {
					t.Fatalf("S=%d res=%d slice %d has range [%d,%d)", count, res, i, z0, z1)
				}
				next = z1
			}
			if next != p.Cells() {
				t.Errorf("S=%d res=%d covers [0,%d), want [0,%d)", count, res, next, p.Cells())
			}
		}
	}
}

func TestSlice_ZRangeBeforeUpdate(t *testing.T) {
	z0, z1 := NewSlice(field.Sphere).ZRange()
	if z0 != 0 || z1 != 0 {
		t.Errorf("ZRange() = [%d,%d), want empty", z0, z1)
	}
}

// =============================================================================
// Compute Tests
// =============================================================================

func TestSlice_ComputeSphere(t *testing.T) {
	s := computeSlices(t, sphereParams, 1)[0]
	a := s.Arena()

	if a.NumPrimitives() == 0 {
		t.Fatal("no triangles")
	}
	if a.NumIndices() != 3*a.NumPrimitives() {
		t.Errorf("NumIndices = %d, NumPrimitives = %d", a.NumIndices(), a.NumPrimitives())
	}

	v := a.Vertices()
	n := a.Normals()
	for i := 0; i < len(v); i += 3 {
		r := math.Sqrt(float64(v[i]*v[i] + v[i+1]*v[i+1] + v[i+2]*v[i+2]))
		if math.Abs(r-float64(sphereParams.Iso)) > 0.02 {
			t.Fatalf("vertex %d at radius %v, want %v", i/3, r, sphereParams.Iso)
		}
		// Normals follow the gradient, outward for a distance field.
		if dot := v[i]*n[i] + v[i+1]*n[i+1] + v[i+2]*n[i+2]; dot <= 0 {
			t.Fatalf("vertex %d normal points inward", i/3)
		}
	}
	for _, idx := range a.Indices() {
		if int(idx) >= a.NumVertices() {
			t.Fatalf("index %d out of range %d", idx, a.NumVertices())
		}
	}
}

func TestSlice_ComputeTilesAcrossSlices(t *testing.T) {
	want := sortedPoints(computeSlices(t, sphereParams, 1))
	if len(want) == 0 {
		t.Fatal("reference has no points")
	}

	for _, count := range []int{2, 4, 8} {
		got := sortedPoints(computeSlices(t, sphereParams, count))
		if !slices.Equal(got, want) {
			t.Errorf("S=%d: %d points differ from single-slice %d points", count, len(got), len(want))
		}
	}
}

func TestSlice_ComputeVisitsEveryCellOnce(t *testing.T) {
	p := Params{Scale: 1, Resolution: 2}
	n := p.Cells()

	for _, count := range []int{1, 2, 4, 8} {
		visited := make(map[[3]float32]int)
		for i := range count {
			var cells int
			counting := func(x, y, z float32, sample march.Sampler, iso, scale float32,
				points, normals []float32, indices []uint32, start uint32) (int, int) {
				visited[[3]float32{x, y, z}]++
				cells++
				return 0, 0
			}
			s := newSlice(field.Sphere, counting, nil, nil)
			s.Update(p, i, count)
			if err := s.Compute(context.Background(), i); err != nil {
				t.Fatal(err)
			}
			z0, z1 := s.ZRange()
			if cells != n*n*(z1-z0) {
				t.Errorf("S=%d slice %d visited %d cells, want %d", count, i, cells, n*n*(z1-z0))
			}
		}
		if len(visited) != n*n*n {
			t.Errorf("S=%d visited %d distinct cells, want %d", count, len(visited), n*n*n)
		}
		for c, k := range visited {
			if k != 1 {
				t.Fatalf("S=%d cell %v visited %d times", count, c, k)
			}
		}
	}
}

func TestSlice_ComputeCancelled(t *testing.T) {
	s := NewSlice(field.Sphere)
	s.Update(sphereParams, 0, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Compute(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Compute() = %v, want context.Canceled", err)
	}
}

func TestSlice_ComputeWrongIndexPanics(t *testing.T) {
	s := NewSlice(field.Sphere)
	s.Update(sphereParams, 1, 2)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	_ = s.Compute(context.Background(), 0)
}

func TestSlice_ComputeRecomputeResets(t *testing.T) {
	s := computeSlices(t, sphereParams, 1)[0]
	first := s.Arena().NumVertices()

	if err := s.Compute(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if got := s.Arena().NumVertices(); got != first {
		t.Errorf("recompute has %d vertices, want %d", got, first)
	}
}

func TestSlice_Cache(t *testing.T) {
	c := cache.NewGeometryCache[sliceKey](1, 4, shardOfSlice)
	s := newSlice(field.Sphere, march.Triangulate, c, nil)
	s.Update(sphereParams, 0, 1)

	if err := s.Compute(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	want := slices.Clone(s.Arena().Vertices())

	// Different parameters, then back: the second visit is a cache hit.
	s.Update(Params{Scale: 2, Iso: 0.3, Resolution: 3}, 0, 1)
	_ = s.Compute(context.Background(), 0)
	s.Update(sphereParams, 0, 1)
	_ = s.Compute(context.Background(), 0)

	if st := c.Stats(); st.Hits != 1 || st.Misses != 2 {
		t.Errorf("cache hits/misses = %d/%d, want 1/2", st.Hits, st.Misses)
	}
	if !slices.Equal(s.Arena().Vertices(), want) {
		t.Error("cached geometry differs from computed geometry")
	}
}

func TestSlice_Info(t *testing.T) {
	s := computeSlices(t, sphereParams, 1)[0]
	info := s.Info()
	if info.Vertices != s.Arena().NumVertices() || info.Triangles != s.Arena().NumPrimitives() {
		t.Errorf("Info() = %+v", info)
	}
	if info.ZStart != 0 || info.ZEnd != sphereParams.Cells() {
		t.Errorf("Info() range [%d,%d)", info.ZStart, info.ZEnd)
	}
	if info.String() == "" {
		t.Error("empty String()")
	}
}

func BenchmarkSlice_Compute(b *testing.B) {
	s := NewSlice(field.NoiseCutout)
	s.Update(Params{Scale: 2, Iso: 0.1, Resolution: 4}, 0, 1)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		_ = s.Compute(ctx, 0)
	}
}
