// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mcubes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gogpu/mcubes/internal/cache"
	"github.com/gogpu/mcubes/internal/parallel"
	"github.com/gogpu/mcubes/render"
)

// waitPollInterval is how often Wait re-runs Update.
const waitPollInterval = time.Millisecond

// Orchestrator owns the slices, their mirrors and the worker pool, and
// decides when new geometry becomes visible.
//
// In the default batch mode the mirrors are refreshed together, and only
// after every worker of a batch has finished. A consumer therefore sees
// either the previous surface or the new one in every slice, never a mix.
//
// Update, Draw, DrawAll, Wait, Merged, SaveOBJ, Info and Close must be
// called from one goroutine, typically the render loop. IsComputing and
// Stats may be called from any goroutine.
type Orchestrator struct {
	slices  []*Slice
	mirrors []render.Mirror
	pool    *parallel.SlicePool
	cache   *cache.GeometryCache[sliceKey]
	notify  chan int
	logger  *slog.Logger

	last    Params
	hasLast bool

	// pending is the latest request recorded while a batch was in flight.
	pending    Params
	hasPending atomic.Bool

	launched  atomic.Bool
	closed    atomic.Bool
	batches   atomic.Uint64
	published atomic.Uint64

	info []SliceInfo
}

// New creates an orchestrator with sliceCount slices and workers.
//
// Each mirror is bound to its slice's arena and refreshed once, so the
// orchestrator starts drawable with empty geometry. If any part cannot be
// created, everything created so far is released and the returned error
// wraps ErrCreate.
func New(sliceCount int, opts ...Option) (*Orchestrator, error) {
	if sliceCount < 1 {
		return nil, fmt.Errorf("%w: slice count %d", ErrCreate, sliceCount)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = Logger()
	}

	o := &Orchestrator{
		slices:  make([]*Slice, sliceCount),
		mirrors: make([]render.Mirror, 0, sliceCount),
		logger:  logger,
		info:    make([]SliceInfo, sliceCount),
	}
	if cfg.cacheSize > 0 {
		o.cache = cache.NewGeometryCache[sliceKey](sliceCount, cfg.cacheSize, shardOfSlice)
	}
	for i := range o.slices {
		o.slices[i] = newSlice(cfg.field, cfg.extract, o.cache, logger)
		o.info[i].Index = i
	}

	for i := range sliceCount {
		m, err := cfg.mirrors(i)
		if err == nil && m == nil {
			err = errors.New("nil mirror")
		}
		if err != nil {
			o.releaseMirrors()
			return nil, fmt.Errorf("%w: mirror %d: %w", ErrCreate, i, err)
		}
		o.mirrors = append(o.mirrors, m)

		m.SetSource(o.slices[i].Arena())
		if !m.RefreshIfStale() && m.IsStale() {
			o.releaseMirrors()
			return nil, fmt.Errorf("%w: mirror %d: initial refresh failed", ErrCreate, i)
		}
	}

	poolOpts := []parallel.PoolOption{parallel.WithPoolLogger(logger)}
	if cfg.instant {
		// Each worker has at most one notification from the batch being
		// drained and one from the next.
		o.notify = make(chan int, 2*sliceCount)
		poolOpts = append(poolOpts, parallel.WithNotify(o.notify))
	}
	pool, err := parallel.NewSlicePool(sliceCount, o.computeSlice, poolOpts...)
	if err != nil {
		o.releaseMirrors()
		return nil, fmt.Errorf("%w: %w", ErrCreate, err)
	}
	o.pool = pool

	logger.Info("orchestrator created", "slices", sliceCount, "instant", cfg.instant, "cache", cfg.cacheSize)
	return o, nil
}

// computeSlice is the pool callback for worker i.
func (o *Orchestrator) computeSlice(ctx context.Context, i int) {
	if err := o.slices[i].Compute(ctx, i); err != nil {
		o.logger.Debug("slice compute aborted", "slice", i, "err", err)
	}
}

// Update requests geometry for p and advances the pipeline. It never
// blocks. Requests with a non-finite field are ignored.
//
// While a batch is in flight the request is only recorded; call Update
// again later. The first call after a batch drains publishes the new
// geometry to every mirror at once. If p differs from what the slices
// hold, a new batch is launched.
func (o *Orchestrator) Update(p Params) {
	if o.closed.Load() {
		return
	}
	if !p.Finite() {
		o.logger.Warn("ignoring non-finite parameters",
			"offset", p.Offset, "scale", p.Scale, "iso", p.Iso)
		return
	}
	p = p.Clamped()

	if o.notify != nil {
		o.drainNotifications()
	}

	if o.pool.NumDirty() > 0 {
		o.pending = p
		o.hasPending.Store(true)
		return
	}
	o.hasPending.Store(false)

	if o.launched.Load() {
		o.publish()
		o.launched.Store(false)
	} else {
		o.refreshStale()
	}

	changed := false
	for i, s := range o.slices {
		if s.Update(p, i, len(o.slices)) {
			changed = true
		}
	}
	o.last, o.hasLast = p, true
	if !changed {
		return
	}

	o.launched.Store(true)
	o.batches.Add(1)
	o.pool.LaunchAll()
	o.logger.Debug("batch launched",
		"batch", o.batches.Load(), "resolution", p.Resolution, "scale", p.Scale, "iso", p.Iso)
}

// publish marks every mirror stale, then refreshes them all from the
// final arenas.
func (o *Orchestrator) publish() {
	for _, m := range o.mirrors {
		m.MarkStale()
	}
	o.refreshStale()
	for i, s := range o.slices {
		o.info[i] = s.Info()
	}
	o.published.Add(1)
	o.logger.Debug("batch published", "batch", o.batches.Load())
}

// refreshStale refreshes mirrors still stale, for example after a failed
// upload. It runs only while no worker is armed.
func (o *Orchestrator) refreshStale() {
	for i, m := range o.mirrors {
		if m.IsStale() && !m.RefreshIfStale() {
			o.logger.Warn("mirror refresh failed", "slice", i)
		}
	}
}

// drainNotifications refreshes the mirror of every slice whose worker has
// reported completion and is not armed again.
func (o *Orchestrator) drainNotifications() {
	for {
		select {
		case i := <-o.notify:
			if o.pool.Armed(i) {
				continue
			}
			m := o.mirrors[i]
			m.MarkStale()
			if !m.RefreshIfStale() {
				o.logger.Warn("mirror refresh failed", "slice", i)
			}
			o.info[i] = o.slices[i].Info()
		default:
			return
		}
	}
}

// IsComputing reports whether a batch has been launched and its geometry
// is not yet published. It becomes false on the Update call that
// publishes the batch.
func (o *Orchestrator) IsComputing() bool {
	if o.closed.Load() {
		return false
	}
	return o.launched.Load() || !o.pool.Ready()
}

// Pending reports whether a request was recorded while a batch was in
// flight and has not been applied yet.
func (o *Orchestrator) Pending() bool { return o.hasPending.Load() }

// Wait calls Update with the latest requested parameters until the
// pipeline is idle or ctx is done. It returns immediately when nothing was
// ever requested.
func (o *Orchestrator) Wait(ctx context.Context) error {
	if o.closed.Load() {
		return ErrClosed
	}
	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()

	for {
		switch {
		case o.hasPending.Load():
			o.Update(o.pending)
		case o.hasLast:
			o.Update(o.last)
		}
		if !o.IsComputing() && !o.hasPending.Load() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Draw draws slice i through its mirror. A stale mirror is not drawn and
// ErrStaleMirror is returned.
func (o *Orchestrator) Draw(i int) error {
	if o.closed.Load() {
		return ErrClosed
	}
	if i < 0 || i >= len(o.mirrors) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSliceIndex, i, len(o.mirrors))
	}
	m := o.mirrors[i]
	if m.IsStale() {
		return fmt.Errorf("%w: slice %d", ErrStaleMirror, i)
	}
	if err := m.Draw(); err != nil {
		return fmt.Errorf("mcubes: draw slice %d: %w", i, err)
	}
	return nil
}

// DrawAll draws every slice. Slices that fail are skipped; their errors
// are joined.
func (o *Orchestrator) DrawAll() error {
	if o.closed.Load() {
		return ErrClosed
	}
	var errs []error
	for i := range o.mirrors {
		if err := o.Draw(i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Slices returns the number of slices.
func (o *Orchestrator) Slices() int { return len(o.slices) }

// Slice returns slice i. Its arena may be read only while IsComputing is
// false.
func (o *Orchestrator) Slice(i int) (*Slice, error) {
	if i < 0 || i >= len(o.slices) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSliceIndex, i, len(o.slices))
	}
	return o.slices[i], nil
}

// Mirror returns the mirror of slice i.
func (o *Orchestrator) Mirror(i int) (render.Mirror, error) {
	if i < 0 || i >= len(o.mirrors) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSliceIndex, i, len(o.mirrors))
	}
	return o.mirrors[i], nil
}

// Info returns per-slice statistics as of the last publication, with the
// current completion count and state of each worker.
func (o *Orchestrator) Info() []SliceInfo {
	out := make([]SliceInfo, len(o.info))
	copy(out, o.info)
	if o.pool != nil {
		for i := range out {
			out[i].Completed = o.pool.Completed(i)
			out[i].Worker = o.pool.State(i).String()
		}
	}
	return out
}

// Stats summarizes the orchestrator.
type Stats struct {
	Slices    int
	Batches   uint64
	Published uint64
	Computing bool
	Pending   bool
	Cache     CacheStats
}

// CacheStats reports geometry cache usage. All fields are zero when the
// cache is disabled.
type CacheStats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// Stats returns current statistics.
func (o *Orchestrator) Stats() Stats {
	s := Stats{
		Slices:    len(o.slices),
		Batches:   o.batches.Load(),
		Published: o.published.Load(),
		Computing: o.IsComputing(),
		Pending:   o.hasPending.Load(),
	}
	if o.cache != nil {
		cs := o.cache.Stats()
		s.Cache = CacheStats{
			Entries:   cs.Len,
			Hits:      cs.Hits,
			Misses:    cs.Misses,
			Evictions: cs.Evictions,
			HitRate:   cs.HitRate,
		}
	}
	return s
}

// Close stops the workers, abandoning a batch in flight. It then releases
// the mirrors and drops cached geometry. It waits for every worker goroutine to exit. Close is safe to
// call multiple times.
func (o *Orchestrator) Close() {
	if !o.closed.CompareAndSwap(false, true) {
		return
	}
	inFlight := o.pool.NumDirty()
	o.pool.Close()
	o.releaseMirrors()
	if o.cache != nil {
		o.cache.Clear()
	}
	o.logger.Info("orchestrator closed", "slices", len(o.slices), "abandoned", inFlight)
}

func (o *Orchestrator) releaseMirrors() {
	for _, m := range o.mirrors {
		m.Release()
	}
}
