// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mcubes

import (
	"math"

	"github.com/gogpu/mcubes/field"
)

// Resolution exponent bounds. A resolution r gives 2<<r cells per axis.
const (
	MinResolution = 1
	MaxResolution = 7
)

// Params are the extraction parameters shared by every slice.
type Params struct {
	// Offset shifts the sampled field's domain.
	Offset field.Offset

	// Scale is the edge length of the cubic volume, centered on the origin.
	Scale float32

	// Iso is the isovalue of the extracted surface.
	Iso float32

	// Resolution is the cell-count exponent, clamped to
	// [MinResolution, MaxResolution].
	Resolution int
}

// Clamped returns p with Resolution clamped to the supported range.
func (p Params) Clamped() Params {
	p.Resolution = min(max(p.Resolution, MinResolution), MaxResolution)
	return p
}

// Finite reports whether every float field of p is finite.
// Orchestrator.Update ignores parameters that are not.
func (p Params) Finite() bool {
	for _, v := range [...]float32{p.Offset.X, p.Offset.Y, p.Offset.Z, p.Scale, p.Iso} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

// Cells returns the number of cells per axis for the clamped resolution.
func (p Params) Cells() int {
	return 2 << p.Clamped().Resolution
}

// CellSize returns the edge length of one cell.
func (p Params) CellSize() float32 {
	return p.Scale / float32(p.Cells())
}

// Domain offsets applied by View so the default position lands away from
// the noise lattice origin.
const (
	viewOffsetX = 123.3456
	viewOffsetY = 732.5489
	viewOffsetZ = 129.3983
)

// View is the consumer-facing parameter set of an interactive viewer.
type View struct {
	// X, Y, Z move through the field.
	X, Y, Z float32

	// Zoom magnifies the volume; the visible edge length is 2/Zoom.
	// Values <= 0 mean 1.
	Zoom float32

	Iso        float32
	Resolution int
}

// DefaultView returns the view a viewer starts with.
func DefaultView() View {
	return View{Zoom: 1, Iso: 0.5, Resolution: 5}
}

// Params maps the view to extraction parameters.
func (v View) Params() Params {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return Params{
		Offset: field.Offset{
			X: v.X + viewOffsetX,
			Y: v.Y + viewOffsetY,
			Z: v.Z + viewOffsetZ,
		},
		Scale:      2 / zoom,
		Iso:        v.Iso,
		Resolution: v.Resolution,
	}.Clamped()
}
