// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package field provides scalar fields for isosurface extraction.
//
// A Field is a pure function of position and an Offset that translates the
// noise domain, so the same field can be explored interactively without
// moving the sampling grid.
package field

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Offset translates the domain of a field.
type Offset struct {
	X, Y, Z float32
}

// Field samples a scalar field at (x, y, z), with the domain shifted by o.
// Implementations must be pure and safe for concurrent use.
type Field func(x, y, z float32, o Offset) float32

// Bind fixes the offset of f, yielding a three-argument sampler.
func (f Field) Bind(o Offset) func(x, y, z float32) float32 {
	return func(x, y, z float32) float32 { return f(x, y, z, o) }
}

// Sphere is the distance from the origin. The offset is ignored, so the
// isovalue selects the radius.
func Sphere(x, y, z float32, _ Offset) float32 {
	return float32(math.Sqrt(float64(x*x + y*y + z*z)))
}

// Noise cut-out parameters.
const (
	CutoutOctaves     = 3
	CutoutPersistence = 0.75
)

// NoiseCutout is |FabsNoise| of the shifted domain minus a spherical
// falloff centered at (0, 0, 1). It carves a cavity out of the noise in
// front of a default camera.
func NoiseCutout(x, y, z float32, o Offset) float32 {
	n := FabsNoise(float64(x+o.X), float64(y+o.Y), float64(z+o.Z), CutoutOctaves, CutoutPersistence)
	dz := z - 1
	return float32(math.Abs(n)) - 0.5/(x*x+y*y+dz*dz)
}

// Gyroid is the triply periodic gyroid surface with unit period, phase
// shifted by the offset.
func Gyroid(x, y, z float32, o Offset) float32 {
	const k = 2 * math.Pi
	sx, cx := math.Sincos(k * float64(x+o.X))
	sy, cy := math.Sincos(k * float64(y+o.Y))
	sz, cz := math.Sincos(k * float64(z+o.Z))
	return float32(sx*cy + sy*cz + sz*cx)
}

// ErrUnknownField is returned by Lookup for names not in the registry.
var ErrUnknownField = errors.New("field: unknown field")

var registry = map[string]Field{
	"sphere": Sphere,
	"noise":  NoiseCutout,
	"gyroid": Gyroid,
}

// Lookup returns the named field.
func Lookup(name string) (Field, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownField, name, Names())
	}
	return f, nil
}

// Names returns the registered field names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
