// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mcubes

import "errors"

var (
	// ErrCreate is returned by New when a slice, mirror or the worker pool
	// could not be set up. Nothing created before the failure survives.
	ErrCreate = errors.New("mcubes: create orchestrator")

	// ErrStaleMirror is returned by Draw for a slice whose mirror has not
	// been refreshed. The slice is not drawn.
	ErrStaleMirror = errors.New("mcubes: mirror is stale")

	// ErrSliceIndex is returned for a slice index outside [0, Slices()).
	ErrSliceIndex = errors.New("mcubes: slice index out of range")

	// ErrComputing is returned by operations that need a drained batch.
	ErrComputing = errors.New("mcubes: batch in flight")

	// ErrClosed is returned by operations on a closed orchestrator.
	ErrClosed = errors.New("mcubes: orchestrator closed")
)
