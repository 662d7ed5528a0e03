// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh provides the geometry storage used by the isosurface pipeline.
//
// # Arena
//
// Arena is a growable multi-attribute vertex/index store. Positions are
// always present; normals, colors and texture coordinates are optional and
// chosen at construction:
//
//	a := mesh.NewArena(mesh.Triangles, mesh.Normal)
//	a.Ensure(12, 5)          // room for one marching-cubes cell
//	v := a.VertexData(0)     // write positions in place
//	a.SetNumVertices(n)      // publish the batch
//
// Two growth policies exist. Resize grows to an exact target once, for
// generators whose output size is known (see NewGlitchSphere). Ensure
// doubles capacity until the requested headroom is available, which keeps
// cell-by-cell emission amortized O(1) per element.
//
// # Export
//
// WriteOBJ and SaveOBJ serialize an arena as Wavefront OBJ. Multiple arenas
// are combined with Merge first.
package mesh
