// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"testing"
)

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewArena(t *testing.T) {
	tests := []struct {
		name string
		prim PrimitiveType
		vpp  int
	}{
		{"lines", Lines, 2},
		{"triangles", Triangles, 3},
		{"quads", Quads, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(tt.prim, Normal)
			if a.VertsPerPrimitive() != tt.vpp {
				t.Errorf("VertsPerPrimitive() = %d, want %d", a.VertsPerPrimitive(), tt.vpp)
			}
			if a.NumVertices() != 0 || a.NumIndices() != 0 {
				t.Errorf("new arena has counts (%d, %d), want (0, 0)", a.NumVertices(), a.NumIndices())
			}
			if a.NumVerticesAllocated() != 0 {
				t.Errorf("new arena allocated %d vertices, want 0", a.NumVerticesAllocated())
			}
		})
	}
}

func TestNewArena_InvalidPrimitivePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewArena(PrimitiveUnknown) did not panic")
		}
	}()
	NewArena(PrimitiveUnknown, 0)
}

// =============================================================================
// Resize Tests
// =============================================================================

func TestArena_Resize(t *testing.T) {
	a := NewArena(Triangles, Normal|Color|UV)
	a.Resize(10, 4)

	if got := a.NumVerticesAllocated(); got != 10 {
		t.Errorf("NumVerticesAllocated() = %d, want 10", got)
	}
	if got := a.NumIndicesAllocated(); got != 12 {
		t.Errorf("NumIndicesAllocated() = %d, want 12", got)
	}
	if got := len(a.NormalData(0)); got != 30 {
		t.Errorf("normal buffer length = %d, want 30", got)
	}
	if got := len(a.ColorData(0)); got != 40 {
		t.Errorf("color buffer length = %d, want 40", got)
	}
	if got := len(a.UVData(0)); got != 20 {
		t.Errorf("uv buffer length = %d, want 20", got)
	}

	// Never shrinks, idempotent.
	a.Resize(5, 2)
	a.Resize(10, 4)
	if a.NumVerticesAllocated() != 10 || a.NumIndicesAllocated() != 12 {
		t.Errorf("Resize shrank or changed capacity: (%d, %d)",
			a.NumVerticesAllocated(), a.NumIndicesAllocated())
	}
}

func TestArena_ResizePreservesContent(t *testing.T) {
	a := NewArena(Lines, 0)
	a.Resize(2, 1)
	copy(a.VertexData(0), []float32{1, 2, 3, 4, 5, 6})
	copy(a.IndexData(0), []uint32{0, 1})

	a.Resize(100, 50)

	want := []float32{1, 2, 3, 4, 5, 6}
	for i, w := range want {
		if got := a.VertexData(0)[i]; got != w {
			t.Errorf("vertex[%d] = %v, want %v", i, got, w)
		}
	}
	if a.IndexData(0)[1] != 1 {
		t.Errorf("index[1] = %d, want 1", a.IndexData(0)[1])
	}
}

// =============================================================================
// Ensure Tests
// =============================================================================

func isPow2Multiple(capacity, base int) bool {
	if capacity%base != 0 {
		return false
	}
	m := capacity / base
	return m > 0 && m&(m-1) == 0
}

func TestArena_EnsureDoubling(t *testing.T) {
	const baseVerts, basePrims = 7, 3

	a := NewArena(Triangles, Normal)
	a.Resize(baseVerts, basePrims)
	baseIndices := basePrims * 3

	requests := [][2]int{{1, 1}, {12, 5}, {12, 5}, {40, 0}, {0, 30}, {3, 3}, {100, 100}, {1, 1}}
	written, prims := 0, 0

	for step, req := range requests {
		a.Ensure(req[0], req[1])

		vc, ic := a.NumVerticesAllocated(), a.NumIndicesAllocated()
		if !isPow2Multiple(vc, baseVerts) {
			t.Errorf("step %d: vertex capacity %d is not a power-of-two multiple of %d", step, vc, baseVerts)
		}
		if !isPow2Multiple(ic, baseIndices) {
			t.Errorf("step %d: index capacity %d is not a power-of-two multiple of %d", step, ic, baseIndices)
		}
		if vc < a.NumVertices()+req[0] {
			t.Errorf("step %d: vertex capacity %d < count %d + extra %d", step, vc, a.NumVertices(), req[0])
		}
		if ic < a.NumIndices()+req[1]*3 {
			t.Errorf("step %d: index capacity %d < count %d + extra %d", step, ic, a.NumIndices(), req[1]*3)
		}
		if len(a.NormalData(0)) != vc*3 {
			t.Errorf("step %d: normals not grown with positions", step)
		}

		// Consume the requested space like an incremental writer would.
		written += req[0]
		prims += req[1]
		a.SetNumVertices(written)
		a.SetNumIndices(prims * 3)
	}
}

func TestArena_EnsureSeedsEmptyBuffers(t *testing.T) {
	a := NewArena(Triangles, 0)
	a.Ensure(12, 5)

	if got := a.NumVerticesAllocated(); got != 12 {
		t.Errorf("NumVerticesAllocated() = %d, want 12", got)
	}
	if got := a.NumIndicesAllocated(); got != 15 {
		t.Errorf("NumIndicesAllocated() = %d, want 15", got)
	}

	a.SetNumVertices(12)
	a.Ensure(1, 0)
	if got := a.NumVerticesAllocated(); got != 24 {
		t.Errorf("after doubling NumVerticesAllocated() = %d, want 24", got)
	}
}

func TestArena_EnsurePreservesContent(t *testing.T) {
	a := NewArena(Triangles, Normal)
	a.Resize(1, 1)
	copy(a.VertexData(0), []float32{9, 8, 7})
	copy(a.NormalData(0), []float32{0, 1, 0})
	a.SetNumVertices(1)

	a.Ensure(50, 50)

	if v := a.VertexData(0); v[0] != 9 || v[1] != 8 || v[2] != 7 {
		t.Errorf("position lost after Ensure: %v", v[:3])
	}
	if n := a.NormalData(0); n[1] != 1 {
		t.Errorf("normal lost after Ensure: %v", n[:3])
	}
}

// =============================================================================
// Accessor Tests
// =============================================================================

func TestArena_LogicalCountClamped(t *testing.T) {
	a := NewArena(Triangles, 0)
	a.Resize(4, 1)
	a.SetNumVertices(100)
	a.SetNumIndices(100)

	if a.NumVertices() != 4 {
		t.Errorf("NumVertices() = %d, want 4 (clamped)", a.NumVertices())
	}
	if a.NumIndices() != 3 {
		t.Errorf("NumIndices() = %d, want 3 (clamped)", a.NumIndices())
	}
}

func TestArena_AccessorPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a *Arena)
	}{
		{"vertex out of range", func(a *Arena) { a.VertexData(4) }},
		{"negative vertex", func(a *Arena) { a.VertexData(-1) }},
		{"primitive out of range", func(a *Arena) { a.IndexData(2) }},
		{"absent colors", func(a *Arena) { a.ColorData(0) }},
		{"absent uvs", func(a *Arena) { a.UVData(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(Triangles, Normal)
			a.Resize(4, 2)
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tt.name)
				}
			}()
			tt.fn(a)
		})
	}
}

func TestArena_AbsentAttributesStayNil(t *testing.T) {
	a := NewArena(Triangles, Normal)
	a.Ensure(100, 100)

	if a.colors != nil || a.uvs != nil {
		t.Error("absent attribute buffers were allocated")
	}
	if a.Colors() != nil || a.UVs() != nil {
		t.Error("absent attribute accessors returned data")
	}
}

// =============================================================================
// Merge Tests
// =============================================================================

// triangleArena builds an arena with n triangles over 3n distinct vertices.
func triangleArena(t *testing.T, n int, tag float32, attrs VertexAttribute) *Arena {
	t.Helper()
	a := NewArena(Triangles, attrs)
	a.Resize(3*n, n)
	for i := range 3 * n {
		v := a.VertexData(i)
		v[0], v[1], v[2] = tag, float32(i), 0
		if a.HasNormals() {
			nd := a.NormalData(i)
			nd[0], nd[1], nd[2] = 0, 0, 1
		}
	}
	idx := a.IndexData(0)
	for i := range 3 * n {
		idx[i] = uint32(i)
	}
	a.SetNumVertices(3 * n)
	a.SetNumIndices(3 * n)
	return a
}

func TestArena_Merge(t *testing.T) {
	a := triangleArena(t, 2, 1, Normal)
	b := triangleArena(t, 3, 2, Normal)
	na, nb := a.NumVertices(), b.NumVertices()
	bIdx := append([]uint32(nil), b.Indices()...)

	if !a.Merge(b) {
		t.Fatal("Merge returned false for matching primitive types")
	}

	if got := a.NumVertices(); got != na+nb {
		t.Errorf("NumVertices() = %d, want %d", got, na+nb)
	}
	if got := a.NumIndices(); got != 6+9 {
		t.Errorf("NumIndices() = %d, want 15", got)
	}
	for i, orig := range bIdx {
		if got := a.Indices()[6+i]; got != orig+uint32(na) {
			t.Errorf("merged index %d = %d, want %d", i, got, orig+uint32(na))
		}
	}
	if got := a.Vertices()[na*3]; got != 2 {
		t.Errorf("first appended vertex tag = %v, want 2", got)
	}
	if got := len(a.Normals()); got != (na+nb)*3 {
		t.Errorf("normals length = %d, want %d", got, (na+nb)*3)
	}
}

func TestArena_MergeMismatch(t *testing.T) {
	a := triangleArena(t, 2, 1, Normal)
	b := NewArena(Lines, Normal)
	b.Resize(2, 1)
	b.SetNumVertices(2)
	b.SetNumIndices(2)

	nv, ni := a.NumVertices(), a.NumIndices()
	if a.Merge(b) {
		t.Error("Merge returned true for mismatched primitive types")
	}
	if a.NumVertices() != nv || a.NumIndices() != ni {
		t.Errorf("receiver changed: (%d, %d), want (%d, %d)", a.NumVertices(), a.NumIndices(), nv, ni)
	}
	if a.Merge(nil) {
		t.Error("Merge(nil) returned true")
	}
}

func TestArena_MergePadsMissingAttributes(t *testing.T) {
	a := triangleArena(t, 1, 1, Normal)
	b := triangleArena(t, 1, 2, 0)

	if !a.Merge(b) {
		t.Fatal("Merge failed")
	}
	n := a.Normals()
	if len(n) != 6*3 {
		t.Fatalf("normals length = %d, want 18", len(n))
	}
	for i := 9; i < 18; i++ {
		if n[i] != 0 {
			t.Errorf("padded normal[%d] = %v, want 0", i, n[i])
		}
	}
}

func TestArena_MergeIntoEmpty(t *testing.T) {
	a := NewArena(Triangles, Normal)
	b := triangleArena(t, 2, 3, Normal)

	if !a.Merge(b) {
		t.Fatal("Merge failed")
	}
	for i, idx := range a.Indices() {
		if idx != uint32(i) {
			t.Errorf("index %d = %d, want %d (no rebase for empty receiver)", i, idx, i)
		}
	}
}

// =============================================================================
// Copy Tests
// =============================================================================

func TestArena_CloneAndCopyFrom(t *testing.T) {
	a := triangleArena(t, 4, 5, Normal)
	c := a.Clone()

	if c.NumVertices() != a.NumVertices() || c.NumIndices() != a.NumIndices() {
		t.Fatalf("clone counts (%d, %d), want (%d, %d)",
			c.NumVertices(), c.NumIndices(), a.NumVertices(), a.NumIndices())
	}
	a.VertexData(0)[0] = 42
	if c.Vertices()[0] == 42 {
		t.Error("clone aliases source buffers")
	}

	d := NewArena(Triangles, Normal|Color)
	if d.CopyFrom(a) {
		t.Error("CopyFrom accepted mismatched attributes")
	}
}

func TestArena_Bounds(t *testing.T) {
	a := NewArena(Lines, 0)
	if _, _, ok := a.Bounds(); ok {
		t.Error("Bounds() ok for empty arena")
	}
	a.Resize(2, 1)
	copy(a.VertexData(0), []float32{-1, 2, 3, 4, -5, 6})
	a.SetNumVertices(2)

	lo, hi, ok := a.Bounds()
	if !ok {
		t.Fatal("Bounds() not ok")
	}
	if lo != [3]float32{-1, -5, 3} || hi != [3]float32{4, 2, 6} {
		t.Errorf("Bounds() = %v %v", lo, hi)
	}
}
