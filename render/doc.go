// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the consumer side of the isosurface pipeline:
// renderer mirrors of slice arenas and a software preview.
//
// # Key Principle
//
// The host application owns the GPU device. This package never creates
// devices or surfaces; it borrows a device through DeviceHandle, fills
// vertex and index buffers, and hands draw calls back to the host.
//
// # Mirrors
//
// A Mirror holds the renderer's copy of one mesh.Arena. The producer
// writes the arena, then the owner marks the mirror stale and refreshes
// it from the consumer goroutine:
//
//	m := render.NewCPUMirror(nil)
//	m.SetSource(arena)
//	m.RefreshIfStale()
//	_ = m.Draw()
//
// CPUMirror keeps a snapshot in memory. HALMirror uploads interleaved
// position and normal data to wgpu HAL buffers; VertexLayout and
// MeshShaderWGSL describe the pipeline the host builds to draw them.
//
// # Preview
//
// RenderPreview rasterizes a triangle arena into an image with
// golang.org/x/image/vector, which is enough to check a run from the
// command line without a GPU.
package render
