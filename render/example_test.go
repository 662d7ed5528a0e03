// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/mcubes/mesh"
	"github.com/gogpu/mcubes/render"
)

// ExampleCPUMirror shows the stale/refresh cycle of a mirror.
func ExampleCPUMirror() {
	a := mesh.NewArena(mesh.Triangles, mesh.Normal)
	a.Resize(3, 1)
	copy(a.VertexData(0), []float32{0, 0, 0, 1, 0, 0, 0, 1, 0})
	copy(a.IndexData(0), []uint32{0, 1, 2})
	a.SetNumVertices(3)
	a.SetNumIndices(3)

	m := render.NewCPUMirror(func(v, _ []float32, idx []uint32) error {
		fmt.Printf("draw %d vertices, %d indices\n", len(v)/3, len(idx))
		return nil
	})
	m.SetSource(a)

	if err := m.Draw(); errors.Is(err, render.ErrStale) {
		fmt.Println("stale, skipped")
	}
	m.RefreshIfStale()
	_ = m.Draw()

	// Output:
	// stale, skipped
	// draw 3 vertices, 3 indices
}

// ExampleVertexLayout prints the interleaved layout used by HALMirror.
func ExampleVertexLayout() {
	for _, l := range render.VertexLayout(mesh.Normal | mesh.Color) {
		fmt.Println("stride", l.ArrayStride)
		for _, attr := range l.Attributes {
			fmt.Println("location", attr.ShaderLocation, "offset", attr.Offset)
		}
	}

	// Output:
	// stride 40
	// location 0 offset 0
	// location 1 offset 12
	// location 2 offset 24
}
