// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package march

import (
	"math"
	"testing"
)

func sphere(r float32) Sampler {
	return func(x, y, z float32) float32 {
		return float32(math.Sqrt(float64(x*x+y*y+z*z))) - r
	}
}

// =============================================================================
// Table Tests
// =============================================================================

func TestTables_CrossedEdgesMatchCorners(t *testing.T) {
	for c := range 256 {
		var want uint16
		for e, ends := range edgeCorners {
			a, b := c>>ends[0]&1, c>>ends[1]&1
			if a != b {
				want |= 1 << e
			}
		}
		if edgeTable[c] != want {
			t.Errorf("case %d: edge mask %012b, want %012b", c, edgeTable[c], want)
		}
	}
}

func TestTables_TriangleBound(t *testing.T) {
	for c, row := range triTable {
		n := 0
		for n < len(row) && row[n] >= 0 {
			n++
		}
		if n%3 != 0 {
			t.Errorf("case %d: %d edge entries, not a multiple of 3", c, n)
		}
		if n/3 > MaxTriangles {
			t.Errorf("case %d: %d triangles, want <= %d", c, n/3, MaxTriangles)
		}
		for i := n; i < len(row); i++ {
			if row[i] != -1 {
				t.Errorf("case %d: entry %d after terminator = %d", c, i, row[i])
			}
		}
	}
}

func TestTables_ComplementHasSameEdges(t *testing.T) {
	for c := range 256 {
		if edgeTable[c] != edgeTable[255-c] {
			t.Errorf("case %d and its complement cross different edges", c)
		}
	}
}

// =============================================================================
// Triangulate Tests
// =============================================================================

func TestTriangulate_UniformCellIsEmpty(t *testing.T) {
	points := make([]float32, 3*MaxPoints)
	indices := make([]uint32, 3*MaxTriangles)

	tests := []struct {
		name string
		iso  float32
	}{
		{"all above", -10},
		{"all below", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt, np := Triangulate(0, 0, 0, sphere(1), tt.iso, 0.5, points, nil, indices, 0)
			if nt != 0 || np != 0 {
				t.Errorf("Triangulate() = (%d, %d), want (0, 0)", nt, np)
			}
		})
	}
}

func TestTriangulate_SingleCorner(t *testing.T) {
	// Only corner 0 lies inside the sphere of radius 0.5 around the origin.
	points := make([]float32, 3*MaxPoints)
	normals := make([]float32, 3*MaxPoints)
	indices := make([]uint32, 3*MaxTriangles)

	nt, np := Triangulate(0, 0, 0, sphere(0.5), 0, 1, points, normals, indices, 7)
	if nt != 1 || np != 3 {
		t.Fatalf("Triangulate() = (%d, %d), want (1, 3)", nt, np)
	}
	for i := range 3 {
		if indices[i] < 7 || indices[i] > 9 {
			t.Errorf("index %d = %d, want in [7,9]", i, indices[i])
		}
	}
	for i := 0; i < 9; i += 3 {
		d := math.Sqrt(float64(points[i]*points[i] + points[i+1]*points[i+1] + points[i+2]*points[i+2]))
		if math.Abs(d-0.5) > 1e-5 {
			t.Errorf("point %d at distance %v, want 0.5", i/3, d)
		}
	}
}

type sphereMesh struct {
	points  []float32
	normals []float32
	indices []uint32
}

// marchSphere triangulates a sphere over a dyadic grid so that shared edge
// points are bit-identical between neighboring cells.
func marchSphere(t *testing.T, radius float32, n int) sphereMesh {
	t.Helper()
	var m sphereMesh
	h := float32(2) / float32(n)
	points := make([]float32, 3*MaxPoints)
	normals := make([]float32, 3*MaxPoints)
	indices := make([]uint32, 3*MaxTriangles)

	for zi := range n {
		for yi := range n {
			for xi := range n {
				x, y, z := -1+float32(xi)*h, -1+float32(yi)*h, -1+float32(zi)*h
				start := uint32(len(m.points) / 3)
				nt, np := Triangulate(x, y, z, sphere(radius), 0, h, points, normals, indices, start)
				if nt > MaxTriangles || np > MaxPoints {
					t.Fatalf("cell (%d,%d,%d) emitted %d triangles, %d points", xi, yi, zi, nt, np)
				}
				m.points = append(m.points, points[:3*np]...)
				m.normals = append(m.normals, normals[:3*np]...)
				m.indices = append(m.indices, indices[:3*nt]...)
			}
		}
	}
	return m
}

func TestTriangulate_SphereVerticesOnSurface(t *testing.T) {
	const radius = 0.7
	m := marchSphere(t, radius, 16)

	if len(m.indices) == 0 {
		t.Fatal("no triangles for a sphere inside the grid")
	}
	for i := 0; i < len(m.points); i += 3 {
		p := m.points[i : i+3]
		d := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		if math.Abs(d-radius) > 0.01 {
			t.Fatalf("vertex %d at distance %v, want ~%v", i/3, d, radius)
		}
	}
	for i, idx := range m.indices {
		if int(idx) >= len(m.points)/3 {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestTriangulate_NormalsPointOutward(t *testing.T) {
	m := marchSphere(t, 0.6, 12)

	for i := 0; i < len(m.normals); i += 3 {
		n, p := m.normals[i:i+3], m.points[i:i+3]
		l := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(l-1) > 1e-4 {
			t.Fatalf("normal %d has length %v", i/3, l)
		}
		if n[0]*p[0]+n[1]*p[1]+n[2]*p[2] <= 0 {
			t.Fatalf("normal %d points inward", i/3)
		}
	}
}

func TestTriangulate_WindingFacesOutward(t *testing.T) {
	m := marchSphere(t, 0.6, 12)

	for i := 0; i < len(m.indices); i += 3 {
		var v [3][3]float32
		for k := range 3 {
			copy(v[k][:], m.points[3*m.indices[i+k]:])
		}
		e1 := [3]float32{v[1][0] - v[0][0], v[1][1] - v[0][1], v[1][2] - v[0][2]}
		e2 := [3]float32{v[2][0] - v[0][0], v[2][1] - v[0][1], v[2][2] - v[0][2]}
		cross := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		if cross[0]*v[0][0]+cross[1]*v[0][1]+cross[2]*v[0][2] < -1e-7 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
}

func TestTriangulate_Watertight(t *testing.T) {
	m := marchSphere(t, 0.7, 16)

	type key [3]float32
	type edge struct{ a, b key }
	at := func(i uint32) key {
		return key{m.points[3*i], m.points[3*i+1], m.points[3*i+2]}
	}

	edges := make(map[edge]int)
	for i := 0; i < len(m.indices); i += 3 {
		for k := range 3 {
			a, b := at(m.indices[i+k]), at(m.indices[i+(k+1)%3])
			if a != b {
				edges[edge{a, b}]++
			}
		}
	}
	for e, n := range edges {
		if edges[edge{e.b, e.a}] != n {
			t.Fatalf("edge %v -> %v used %d times, reverse %d times", e.a, e.b, n, edges[edge{e.b, e.a}])
		}
	}
}

func BenchmarkTriangulate(b *testing.B) {
	points := make([]float32, 3*MaxPoints)
	normals := make([]float32, 3*MaxPoints)
	indices := make([]uint32, 3*MaxTriangles)
	s := sphere(0.5)

	b.ReportAllocs()
	for b.Loop() {
		Triangulate(0.3, 0.3, 0.2, s, 0, 0.1, points, normals, indices, 0)
	}
}
