// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mcubes

import (
	"fmt"

	"github.com/gogpu/mcubes/mesh"
)

// Merged returns a new arena holding every slice's geometry in slice
// order. It returns ErrComputing while a batch is in flight or not yet
// published.
func (o *Orchestrator) Merged() (*mesh.Arena, error) {
	if o.closed.Load() {
		return nil, ErrClosed
	}
	if o.IsComputing() {
		return nil, ErrComputing
	}

	out := mesh.NewArena(mesh.Triangles, mesh.Normal)
	for i, s := range o.slices {
		if !out.Merge(s.Arena()) {
			return nil, fmt.Errorf("mcubes: merge slice %d: primitive mismatch", i)
		}
	}
	return out, nil
}

// SaveOBJ writes the merged geometry of all slices to path in Wavefront
// OBJ format.
func (o *Orchestrator) SaveOBJ(path string) error {
	merged, err := o.Merged()
	if err != nil {
		return err
	}
	if err := mesh.SaveOBJ(path, merged); err != nil {
		return fmt.Errorf("mcubes: %w", err)
	}
	o.logger.Info("mesh exported", "path", path,
		"vertices", merged.NumVertices(), "triangles", merged.NumPrimitives())
	return nil
}
