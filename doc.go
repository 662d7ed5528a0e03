// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mcubes extracts isosurfaces of procedural scalar fields in
// parallel slices.
//
// # Overview
//
// The volume is split along Z into slices. Each slice owns a mesh.Arena
// and is triangulated with marching cubes by its own long-lived worker.
// An Orchestrator launches all workers as one batch and publishes the
// result to the renderer mirrors only after the whole batch has finished:
//
//	o, err := mcubes.New(4, mcubes.WithField(field.Sphere))
//	if err != nil {
//	    return err
//	}
//	defer o.Close()
//
//	// In the render loop:
//	o.Update(mcubes.Params{Scale: 2, Iso: 0.8, Resolution: 5})
//	_ = o.DrawAll()
//
// Update never blocks. Parameter changes made while a batch is running are
// applied by the first Update after the batch drains.
//
// # Mirrors
//
// Renderer-side copies of the arenas implement render.Mirror. The default
// is render.CPUMirror; WithMirrorFactory installs others, such as
// render.HALMirror for wgpu.
//
// # Logging
//
// mcubes logs through log/slog and is silent by default. See SetLogger.
package mcubes
