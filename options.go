// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mcubes

import (
	"log/slog"

	"github.com/gogpu/mcubes/field"
	"github.com/gogpu/mcubes/march"
	"github.com/gogpu/mcubes/render"
)

// Extractor triangulates one cell. It must follow the march.Triangulate
// contract, in particular the march.MaxTriangles and march.MaxPoints bounds.
type Extractor func(x, y, z float32, sample march.Sampler, iso, scale float32,
	points, normals []float32, indices []uint32, start uint32) (numTriangles, numPoints int)

// MirrorFactory creates the mirror for slice index.
type MirrorFactory func(index int) (render.Mirror, error)

// Option configures an Orchestrator during creation.
//
// Example:
//
//	o, err := mcubes.New(4,
//	    mcubes.WithField(field.Gyroid),
//	    mcubes.WithGeometryCache(16),
//	)
type Option func(*options)

type options struct {
	field     field.Field
	extract   Extractor
	mirrors   MirrorFactory
	instant   bool
	cacheSize int
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		field:   field.NoiseCutout,
		extract: march.Triangulate,
		mirrors: func(int) (render.Mirror, error) { return render.NewCPUMirror(nil), nil },
	}
}

// WithField sets the sampled scalar field. The default is field.NoiseCutout.
func WithField(f field.Field) Option {
	return func(o *options) {
		if f != nil {
			o.field = f
		}
	}
}

// WithExtractor replaces the cell triangulation. The default is
// march.Triangulate.
func WithExtractor(e Extractor) Option {
	return func(o *options) {
		if e != nil {
			o.extract = e
		}
	}
}

// WithMirrorFactory sets how per-slice mirrors are created. The default
// creates a render.CPUMirror without a draw callback.
//
// Example:
//
//	mcubes.WithMirrorFactory(func(int) (render.Mirror, error) {
//	    return render.NewHALMirrorFromProvider(provider)
//	})
func WithMirrorFactory(fn MirrorFactory) Option {
	return func(o *options) {
		if fn != nil {
			o.mirrors = fn
		}
	}
}

// WithInstantUpdate refreshes each slice's mirror as soon as its worker
// finishes instead of once per batch. Slices then show geometry from
// different batches for a while, so the picture can tear.
func WithInstantUpdate() Option {
	return func(o *options) { o.instant = true }
}

// WithGeometryCache keeps up to perShard computed geometries per slice and
// reuses them when parameters repeat. perShard <= 0 disables the cache.
func WithGeometryCache(perShard int) Option {
	return func(o *options) { o.cacheSize = perShard }
}

// WithLogger sets the orchestrator's logger instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
