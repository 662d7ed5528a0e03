// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "fmt"

// PrimitiveType identifies how consecutive indices are grouped.
// The numeric values match the classic GL enumerants so that a mirror
// can hand them to a driver without translation.
type PrimitiveType uint32

const (
	// PrimitiveUnknown is the zero value and is rejected by NewArena.
	PrimitiveUnknown PrimitiveType = 0x00

	// Lines groups indices in pairs.
	Lines PrimitiveType = 0x01

	// Triangles groups indices in triples.
	Triangles PrimitiveType = 0x04

	// Quads groups indices in fours.
	Quads PrimitiveType = 0x07
)

// VertsPerPrimitive returns the number of indices per primitive,
// or 0 for an unknown primitive type.
func (p PrimitiveType) VertsPerPrimitive() int {
	switch p {
	case Lines:
		return 2
	case Triangles:
		return 3
	case Quads:
		return 4
	default:
		return 0
	}
}

// String returns the primitive type name.
func (p PrimitiveType) String() string {
	switch p {
	case Lines:
		return "Lines"
	case Triangles:
		return "Triangles"
	case Quads:
		return "Quads"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", uint32(p))
	}
}

// VertexAttribute is a bit set of optional per-vertex attributes.
// Positions are always present and have no flag.
type VertexAttribute uint32

const (
	// Normal enables a 3-float normal per vertex.
	Normal VertexAttribute = 1 << iota

	// Color enables a 4-float RGBA color per vertex.
	Color

	// UV enables a 2-float texture coordinate per vertex.
	UV
)

// Has reports whether all attributes in a are present in v.
func (v VertexAttribute) Has(a VertexAttribute) bool {
	return v&a == a && a != 0
}

// Per-vertex float widths of each attribute buffer.
const (
	PositionWidth = 3
	NormalWidth   = 3
	ColorWidth    = 4
	UVWidth       = 2
)
