// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "fmt"

// Arena is a growable, multi-attribute vertex and index store.
//
// Every attribute buffer has an allocated capacity (its length) and the
// arena tracks a logical count of valid vertices and indices on top of it.
// The logical count reported by NumVertices and NumIndices never exceeds
// the allocated capacity. Writers obtain mutable views with VertexData,
// NormalData, ColorData, UVData and IndexData, fill them in place, and then
// publish the new logical counts with SetNumVertices and SetNumIndices.
//
// Buffers for attributes that were not requested at construction are never
// allocated, read, or written.
//
// Thread safety: Arena is NOT safe for concurrent use. Ownership alternates
// between a single writer and readers; see the mcubes package.
type Arena struct {
	primitive PrimitiveType
	attrs     VertexAttribute
	vpp       int

	vertices []float32
	normals  []float32
	colors   []float32
	uvs      []float32
	indices  []uint32

	numVertices int
	numIndices  int
}

// NewArena creates an empty arena for the given primitive type and
// optional vertex attributes.
//
// NewArena panics if the primitive type is unknown.
func NewArena(primitive PrimitiveType, attrs VertexAttribute) *Arena {
	vpp := primitive.VertsPerPrimitive()
	if vpp == 0 {
		panic(fmt.Sprintf("mesh: invalid primitive type %v", primitive))
	}
	return &Arena{
		primitive: primitive,
		attrs:     attrs,
		vpp:       vpp,
	}
}

// Primitive returns the primitive type of the arena.
func (a *Arena) Primitive() PrimitiveType { return a.primitive }

// Attributes returns the optional attributes carried by the arena.
func (a *Arena) Attributes() VertexAttribute { return a.attrs }

// VertsPerPrimitive returns the number of indices per primitive.
func (a *Arena) VertsPerPrimitive() int { return a.vpp }

// HasNormals reports whether the arena stores normals.
func (a *Arena) HasNormals() bool { return a.attrs.Has(Normal) }

// HasColors reports whether the arena stores colors.
func (a *Arena) HasColors() bool { return a.attrs.Has(Color) }

// HasUVs reports whether the arena stores texture coordinates.
func (a *Arena) HasUVs() bool { return a.attrs.Has(UV) }

// NumVerticesAllocated returns the vertex capacity.
func (a *Arena) NumVerticesAllocated() int { return len(a.vertices) / PositionWidth }

// NumIndicesAllocated returns the index capacity.
func (a *Arena) NumIndicesAllocated() int { return len(a.indices) }

// NumVertices returns the logical vertex count, clamped to the capacity.
func (a *Arena) NumVertices() int { return min(a.numVertices, a.NumVerticesAllocated()) }

// NumIndices returns the logical index count, clamped to the capacity.
func (a *Arena) NumIndices() int { return min(a.numIndices, a.NumIndicesAllocated()) }

// NumPrimitives returns the number of complete primitives in the logical range.
func (a *Arena) NumPrimitives() int { return a.NumIndices() / a.vpp }

// SetNumVertices sets the logical vertex count after a write batch.
func (a *Arena) SetNumVertices(n int) { a.numVertices = n }

// SetNumIndices sets the logical index count after a write batch.
func (a *Arena) SetNumIndices(n int) { a.numIndices = n }

// Reset sets both logical counts to zero. Capacity is kept.
func (a *Arena) Reset() {
	a.numVertices = 0
	a.numIndices = 0
}

// Resize grows the backing storage to hold at least numVerts vertices and
// numPrimitives primitives. It never shrinks and is a no-op when the arena
// is already large enough. Unlike Ensure, the target is used exactly.
func (a *Arena) Resize(numVerts, numPrimitives int) {
	a.growVertices(numVerts)
	a.indices = grow(a.indices, numPrimitives*a.vpp)
}

// Ensure guarantees room for extraVerts more vertices and extraPrimitives
// more primitives past the current logical counts.
//
// While the headroom is insufficient, every active attribute buffer (or the
// index buffer) doubles in one step. This bounds the amortized cost of
// incremental writes without knowing the final size ahead of time. An empty
// buffer is seeded with exactly the requested amount on its first growth.
// Existing content is preserved.
func (a *Arena) Ensure(extraVerts, extraPrimitives int) {
	for a.NumVerticesAllocated()-a.NumVertices() < extraVerts {
		capacity := a.NumVerticesAllocated()
		if capacity == 0 {
			a.growVertices(extraVerts)
			continue
		}
		a.growVertices(2 * capacity)
	}

	extraIndices := extraPrimitives * a.vpp
	for a.NumIndicesAllocated()-a.NumIndices() < extraIndices {
		capacity := a.NumIndicesAllocated()
		if capacity == 0 {
			a.indices = grow(a.indices, extraIndices)
			continue
		}
		a.indices = grow(a.indices, 2*capacity)
	}
}

func (a *Arena) growVertices(n int) {
	a.vertices = grow(a.vertices, n*PositionWidth)
	if a.HasNormals() {
		a.normals = grow(a.normals, n*NormalWidth)
	}
	if a.HasColors() {
		a.colors = grow(a.colors, n*ColorWidth)
	}
	if a.HasUVs() {
		a.uvs = grow(a.uvs, n*UVWidth)
	}
}

// grow extends s to length n, keeping its content. Shorter targets are ignored.
func grow[T float32 | uint32](s []T, n int) []T {
	if n <= len(s) {
		return s
	}
	out := make([]T, n)
	copy(out, s)
	return out
}

// VertexData returns a mutable view of the position buffer starting at
// vertex i. Callers write 3-float tuples in place.
//
// VertexData panics if i is outside the allocated capacity.
func (a *Arena) VertexData(i int) []float32 {
	return view(a.vertices, i, PositionWidth, "vertex")
}

// NormalData returns a mutable view of the normal buffer starting at vertex i.
//
// NormalData panics if the arena has no normals or i is out of capacity.
func (a *Arena) NormalData(i int) []float32 {
	if !a.HasNormals() {
		panic("mesh: arena has no normals")
	}
	return view(a.normals, i, NormalWidth, "normal")
}

// ColorData returns a mutable view of the color buffer starting at vertex i.
//
// ColorData panics if the arena has no colors or i is out of capacity.
func (a *Arena) ColorData(i int) []float32 {
	if !a.HasColors() {
		panic("mesh: arena has no colors")
	}
	return view(a.colors, i, ColorWidth, "color")
}

// UVData returns a mutable view of the UV buffer starting at vertex i.
//
// UVData panics if the arena has no UVs or i is out of capacity.
func (a *Arena) UVData(i int) []float32 {
	if !a.HasUVs() {
		panic("mesh: arena has no uvs")
	}
	return view(a.uvs, i, UVWidth, "uv")
}

// IndexData returns a mutable view of the index buffer starting at
// primitive p.
//
// IndexData panics if p is outside the allocated capacity.
func (a *Arena) IndexData(p int) []uint32 {
	return view(a.indices, p, a.vpp, "primitive")
}

func view[T float32 | uint32](s []T, i, width int, what string) []T {
	if i < 0 || i*width >= len(s) {
		panic(fmt.Sprintf("mesh: %s index %d out of range [0,%d)", what, i, len(s)/width))
	}
	return s[i*width:]
}

// Vertices returns the logical position data (3 floats per vertex).
// The slice aliases the arena and must not be retained across writes.
func (a *Arena) Vertices() []float32 { return a.vertices[:a.NumVertices()*PositionWidth] }

// Normals returns the logical normal data, or nil when absent.
func (a *Arena) Normals() []float32 {
	if !a.HasNormals() {
		return nil
	}
	return a.normals[:a.NumVertices()*NormalWidth]
}

// Colors returns the logical color data, or nil when absent.
func (a *Arena) Colors() []float32 {
	if !a.HasColors() {
		return nil
	}
	return a.colors[:a.NumVertices()*ColorWidth]
}

// UVs returns the logical texture coordinates, or nil when absent.
func (a *Arena) UVs() []float32 {
	if !a.HasUVs() {
		return nil
	}
	return a.uvs[:a.NumVertices()*UVWidth]
}

// Indices returns the logical index data.
func (a *Arena) Indices() []uint32 { return a.indices[:a.NumIndices()] }

// Merge appends the logical content of other to a.
//
// Both arenas must share the same primitive type; otherwise Merge returns
// false and leaves a untouched. Attributes present in both arenas are
// concatenated. Attributes only a carries are zero-filled for the appended
// vertices so every buffer stays aligned with the positions. Appended
// indices are rebased by a's vertex count before the merge.
func (a *Arena) Merge(other *Arena) bool {
	if other == nil || a.primitive != other.primitive {
		return false
	}

	n0, n1 := a.NumVertices(), other.NumVertices()
	i0, i1 := a.NumIndices(), other.NumIndices()
	src := other.indices[:i1]

	a.vertices = append(a.vertices[:n0*PositionWidth], other.vertices[:n1*PositionWidth]...)
	if a.HasNormals() {
		a.normals = appendAttr(a.normals[:n0*NormalWidth], other.Normals(), n1*NormalWidth)
	}
	if a.HasColors() {
		a.colors = appendAttr(a.colors[:n0*ColorWidth], other.Colors(), n1*ColorWidth)
	}
	if a.HasUVs() {
		a.uvs = appendAttr(a.uvs[:n0*UVWidth], other.UVs(), n1*UVWidth)
	}

	a.indices = grow(a.indices[:i0], i0+i1)
	base := uint32(n0)
	for i, idx := range src {
		a.indices[i0+i] = idx + base
	}

	a.numVertices = n0 + n1
	a.numIndices = i0 + i1
	return true
}

func appendAttr(dst, src []float32, n int) []float32 {
	if src == nil {
		return append(dst, make([]float32, n)...)
	}
	return append(dst, src[:n]...)
}

// CopyFrom replaces the content of a with the logical content of src.
// Capacity of a is reused when sufficient. Both arenas must share the
// primitive type and attributes; otherwise CopyFrom returns false and a is
// left untouched.
func (a *Arena) CopyFrom(src *Arena) bool {
	if src == nil || a.primitive != src.primitive || a.attrs != src.attrs {
		return false
	}
	nv, ni := src.NumVertices(), src.NumIndices()
	a.Resize(nv, (ni+a.vpp-1)/a.vpp)
	copy(a.vertices, src.Vertices())
	copy(a.normals, src.Normals())
	copy(a.colors, src.Colors())
	copy(a.uvs, src.UVs())
	copy(a.indices, src.Indices())
	a.numVertices = nv
	a.numIndices = ni
	return true
}

// Clone returns a compact deep copy holding only the logical content.
func (a *Arena) Clone() *Arena {
	c := NewArena(a.primitive, a.attrs)
	c.CopyFrom(a)
	return c
}

// Bounds returns the axis-aligned bounding box of the logical vertices.
// ok is false for an empty arena.
func (a *Arena) Bounds() (lo, hi [3]float32, ok bool) {
	v := a.Vertices()
	if len(v) == 0 {
		return lo, hi, false
	}
	copy(lo[:], v[:3])
	copy(hi[:], v[:3])
	for i := PositionWidth; i < len(v); i += PositionWidth {
		for k := range 3 {
			lo[k] = min(lo[k], v[i+k])
			hi[k] = max(hi[k], v[i+k])
		}
	}
	return lo, hi, true
}
