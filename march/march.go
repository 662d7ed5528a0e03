// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package march triangulates isosurfaces of scalar fields, one cube cell at
// a time, with the table-driven marching cubes algorithm.
//
// Triangulate is a pure function of its inputs. It performs no allocation;
// callers provide output buffers with room for MaxPoints points and
// MaxTriangles triangles.
package march

import "math"

const (
	// MaxTriangles is the largest number of triangles emitted for one cell.
	MaxTriangles = 5

	// MaxPoints is the largest number of points emitted for one cell.
	MaxPoints = 12
)

// Sampler evaluates a scalar field at a point.
type Sampler func(x, y, z float32) float32

// Triangulate extracts the part of the isosurface sample(p) == iso that
// passes through the cube with origin (x, y, z) and edge length scale.
//
// Corner i contributes bit i of the case index when its sample is below iso.
// One point is emitted per crossed edge, linearly interpolated between the
// edge's corners, and written to points as consecutive xyz triples. When
// normals is non-nil it receives the normalized gradient of sample at each
// point, estimated with central differences. Triangle indices are written to
// indices as triples offset by start.
//
// points and normals must hold 3*MaxPoints floats, indices 3*MaxTriangles
// entries. A cell entirely above or below iso produces nothing.
func Triangulate(x, y, z float32, sample Sampler, iso, scale float32,
	points, normals []float32, indices []uint32, start uint32) (numTriangles, numPoints int) {
	var (
		corner [8][3]float32
		value  [8]float32
		cube   int
	)
	for i, off := range cornerOffsets {
		corner[i] = [3]float32{x + off[0]*scale, y + off[1]*scale, z + off[2]*scale}
		value[i] = sample(corner[i][0], corner[i][1], corner[i][2])
		if value[i] < iso {
			cube |= 1 << i
		}
	}

	crossed := edgeTable[cube]
	if crossed == 0 {
		return 0, 0
	}

	var slot [12]uint32
	for e := range 12 {
		if crossed&(1<<e) == 0 {
			continue
		}
		a, b := edgeCorners[e][0], edgeCorners[e][1]
		p := interpolate(corner[a], corner[b], value[a], value[b], iso)

		o := numPoints * 3
		points[o], points[o+1], points[o+2] = p[0], p[1], p[2]
		if normals != nil {
			n := gradient(sample, p, scale)
			normals[o], normals[o+1], normals[o+2] = n[0], n[1], n[2]
		}
		slot[e] = uint32(numPoints)
		numPoints++
	}

	row := &triTable[cube]
	for i := 0; i < len(row) && row[i] >= 0; i += 3 {
		o := numTriangles * 3
		indices[o] = start + slot[row[i]]
		indices[o+1] = start + slot[row[i+1]]
		indices[o+2] = start + slot[row[i+2]]
		numTriangles++
	}
	return numTriangles, numPoints
}

func interpolate(pa, pb [3]float32, va, vb, iso float32) [3]float32 {
	t := float32(0.5)
	if d := vb - va; d > 1e-12 || d < -1e-12 {
		t = (iso - va) / d
	}
	return [3]float32{
		pa[0] + t*(pb[0]-pa[0]),
		pa[1] + t*(pb[1]-pa[1]),
		pa[2] + t*(pb[2]-pa[2]),
	}
}

// gradient returns the unit gradient of sample at p, or the zero vector
// where the field is flat.
func gradient(sample Sampler, p [3]float32, scale float32) [3]float32 {
	d := scale * 0.25
	gx := sample(p[0]+d, p[1], p[2]) - sample(p[0]-d, p[1], p[2])
	gy := sample(p[0], p[1]+d, p[2]) - sample(p[0], p[1]-d, p[2])
	gz := sample(p[0], p[1], p[2]+d) - sample(p[0], p[1], p[2]-d)

	l := float32(math.Sqrt(float64(gx*gx + gy*gy + gz*gz)))
	if l == 0 {
		return [3]float32{}
	}
	return [3]float32{gx / l, gy / l, gz / l}
}
