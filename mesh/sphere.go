// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "math"

// SphereParams describes a latitude/longitude sphere.
type SphereParams struct {
	Center     [3]float32
	Radius     float32
	Resolution int // longitudinal segments; rows = Resolution/2
}

// GlitchParams modulates the sphere with phase-shifted sine bands.
// Lambda 0 yields a plain sphere.
type GlitchParams struct {
	T        float32
	Lambda   float32
	Colormap int
}

// DefaultSphereParams returns a unit sphere at the origin with 46 segments.
func DefaultSphereParams() SphereParams {
	return SphereParams{Radius: 1, Resolution: 46}
}

// NewGlitchSphere builds a sphere whose size is known up front, so the
// arena is sized once with Resize instead of growing incrementally.
// The arena carries normals, colors and UVs.
//
// Each latitude row owns two vertex rings (upper and lower) so that the
// modulation can differ between neighboring rows.
func NewGlitchSphere(sp SphereParams, gp GlitchParams) *Arena {
	a := NewArena(Triangles, Normal|Color|UV)
	BuildGlitchSphere(a, sp, gp)
	return a
}

// BuildGlitchSphere fills a with the sphere geometry, reusing its capacity.
// Resolution is raised to 2 when smaller.
func BuildGlitchSphere(a *Arena, sp SphereParams, gp GlitchParams) {
	n := max(sp.Resolution, 2)
	dphi := 2 * math.Pi / float64(n)

	cosTable := make([]float32, n+1)
	sinTable := make([]float32, n+1)
	for i := range n + 1 {
		alpha := float64(i) * dphi
		cosTable[i] = float32(math.Cos(alpha))
		sinTable[i] = float32(math.Sin(alpha))
	}

	rows, cols := n/2, n
	numVerts := 2 * rows * cols
	numTris := 2 * rows * cols

	a.Reset()
	a.Resize(numVerts, numTris)

	lambda := gp.Lambda
	vertexCount, indexCount := 0, 0
	indices := a.IndexData(0)
	order := [6]int{0, 2, 1, 3, 2, 0}

	for row := range rows {
		rowIndex := row * 2 * cols

		for r := range 2 {
			thetaIndex := row + r
			theta := float64(thetaIndex) * dphi
			f1 := (1 - lambda) + lambda*float32(math.Sin(theta+float64(gp.T)))
			cosTheta, sinTheta := cosTable[thetaIndex], sinTable[thetaIndex]

			for col := range cols {
				phi := float64(col) * dphi
				f2 := (1 - lambda) + lambda*float32(math.Sin(phi+float64(gp.T)))
				cosPhi, sinPhi := cosTable[col], sinTable[col]

				vi := rowIndex + r*cols + col
				var fx, fy float32
				if r == 0 {
					fx, fy = sinTheta*cosPhi*f1, sinTheta*sinPhi*f2
				} else {
					fx, fy = sinTheta*cosPhi*f2, sinTheta*sinPhi*f1
				}
				fz := cosTheta

				vp := a.VertexData(vi)
				vp[0] = sp.Center[0] + sp.Radius*fx
				vp[1] = sp.Center[1] + sp.Radius*fz
				vp[2] = sp.Center[2] + sp.Radius*fy

				np := a.NormalData(vi)
				if lambda > 0 {
					l := float32(math.Sqrt(float64(fx*fx + fy*fy + fz*fz)))
					if l > 0 {
						fx, fy, fz = fx/l, fy/l, fz/l
					}
				}
				np[0], np[1], np[2] = fx, fz, fy

				uv := a.UVData(vi)
				uv[0] = float32(col) / float32(cols)
				uv[1] = 2 * float32(row+1) / float32(cols)

				vertexCount++
			}
		}

		for col := range cols {
			i0 := rowIndex + col
			i1 := rowIndex + (col+1)%cols
			quad := [4]int{i0, i0 + cols, i1 + cols, i1}
			for _, k := range order {
				indices[indexCount] = uint32(quad[k])
				indexCount++
			}
		}
	}

	a.SetNumVertices(vertexCount)
	a.SetNumIndices(indexCount)
	ApplyColormap(a, n, gp.Colormap)
}

// ApplyColormap recolors a sphere built by BuildGlitchSphere with the given
// resolution. Negative colormaps and arenas without colors are left alone.
// Unknown colormaps fall back to opaque white.
func ApplyColormap(a *Arena, resolution, colormap int) {
	if !a.HasColors() || colormap < 0 {
		return
	}
	rows, cols := resolution/2, resolution
	colors := a.Colors()

	for row := range rows {
		rowIndex := row * 2 * cols
		for r := range 2 {
			for col := range cols {
				vi := rowIndex + r*cols + col
				if (vi+1)*ColorWidth > len(colors) {
					return
				}
				c := colormapColor(colormap, col)
				copy(colors[vi*ColorWidth:], c[:])
			}
		}
	}
}

func colormapColor(colormap, i int) [4]float32 {
	f := func(v float64) float32 { return float32(v) }
	switch colormap {
	case 1:
		k := float64(i % 5)
		return [4]float32{f(0.1 * k), f(0.1 * k), f(0.6 * k), 0.1}
	case 2, 7:
		k := float64(i % 3)
		return [4]float32{f(0.5 * k), f(0.3 * k), f(0.1 * k), 0.1}
	case 3:
		k := float64(i % 2)
		return [4]float32{f(0.5 * k), f(0.5 * k), f(0.5 * k), 0.4}
	case 4, 6:
		return [4]float32{
			f(float64((i%4)*(i%9)) / (4 * 9) * 0.9),
			f(float64((i%2)*(i%3)) / (2 * 3) * 0.9),
			f(float64((i%7)*(i%11)) / (7 * 11) * 0.8),
			0.1,
		}
	case 5:
		return [4]float32{f(float64(i % 2)), f(float64(i%8+1) / 0.8), f(float64(i%4) / 2), 0.02}
	case 8:
		k := float64(i % 3)
		return [4]float32{f(0.5 * k), f(0.3 * k), f(0.1 * k), 0.5}
	case 9:
		return [4]float32{f(0.2 * float64(i%7+3)), f(0.2 * float64(i%3)), f(0.1 * float64(i%4)), 0.17}
	case 10:
		k := float64(i % 5)
		return [4]float32{f(0.2 * k), f(0.2 * k), f(0.2 * k), 0.1}
	default:
		return [4]float32{1, 1, 1, 1}
	}
}
