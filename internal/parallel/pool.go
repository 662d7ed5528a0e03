package parallel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ErrNoWorkers is returned by NewSlicePool for a non-positive worker count.
var ErrNoWorkers = errors.New("parallel: worker count must be positive")

// SliceFunc computes one slice. It is invoked on the worker that owns index
// and must return promptly once ctx is cancelled.
type SliceFunc func(ctx context.Context, index int)

// WorkerState is the lifecycle state of one pool worker.
type WorkerState uint32

// Worker states.
const (
	WorkerIdle WorkerState = iota
	WorkerArmed
	WorkerComputing
	WorkerKilled
)

// String returns the state name.
func (s WorkerState) String() string {
	switch s {
	case WorkerIdle:
		return "idle"
	case WorkerArmed:
		return "armed"
	case WorkerComputing:
		return "computing"
	case WorkerKilled:
		return "killed"
	default:
		return fmt.Sprintf("WorkerState(%d)", uint32(s))
	}
}

// SlicePool runs one long-lived goroutine per slice.
//
// Assignment is static: worker i only ever runs fn(ctx, i). There is no
// shared queue and no stealing. A batch starts with LaunchAll, which arms
// every worker; each worker computes once and clears its own armed bit.
// NumDirty reaching zero marks the end of the batch.
//
// Idle workers park on their own wake channel and consume no CPU.
//
// Thread safety: SlicePool is safe for concurrent use. LaunchAll must not be
// called while a batch is in flight; callers check Ready first.
type SlicePool struct {
	// workers is the number of worker goroutines.
	workers int

	fn SliceFunc

	// wake holds per-worker wake channels (capacity 1).
	wake []chan struct{}

	// armed has one bit per worker, set by LaunchAll and cleared by the worker.
	armed *DirtyMask

	// state holds each worker's WorkerState.
	state []atomic.Uint32

	// completed counts finished callbacks per worker.
	completed []atomic.Uint64

	// notify, when set, receives a worker's index after each callback.
	notify chan<- int

	logger *slog.Logger

	// ctx is handed to every callback and cancelled by Close.
	ctx    context.Context
	cancel context.CancelFunc

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool accepts launches.
	running atomic.Bool
}

// PoolOption configures a SlicePool.
type PoolOption func(*SlicePool)

// WithNotify makes every worker send its index on ch after it finishes a
// callback and clears its armed bit. The send gives up when the pool is
// closed. ch should be buffered with at least one slot per worker.
func WithNotify(ch chan<- int) PoolOption {
	return func(p *SlicePool) {
		p.notify = ch
	}
}

// WithPoolLogger sets the logger for pool lifecycle events.
func WithPoolLogger(l *slog.Logger) PoolOption {
	return func(p *SlicePool) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewSlicePool creates a pool of n workers bound to fn.
// The workers start immediately and park until the first LaunchAll.
func NewSlicePool(n int, fn SliceFunc, opts ...PoolOption) (*SlicePool, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoWorkers, n)
	}
	if fn == nil {
		return nil, errors.New("parallel: nil slice func")
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &SlicePool{
		workers:   n,
		fn:        fn,
		wake:      make([]chan struct{}, n),
		armed:     NewDirtyMask(n),
		state:     make([]atomic.Uint32, n),
		completed: make([]atomic.Uint64, n),
		logger:    slog.New(slog.DiscardHandler),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	for i := range n {
		p.wake[i] = make(chan struct{}, 1)
	}

	p.running.Store(true)

	p.wg.Add(n)
	for i := range n {
		go p.worker(i)
	}

	p.logger.Debug("slice pool started", "workers", n)
	return p, nil
}

// worker is the main loop for each worker goroutine.
func (p *SlicePool) worker(id int) {
	defer p.wg.Done()

	wake := p.wake[id]
	for {
		select {
		case <-p.done:
			return
		case <-wake:
		}

		if !p.armed.Test(id) {
			continue
		}

		p.state[id].Store(uint32(WorkerComputing))
		p.fn(p.ctx, id)
		p.completed[id].Add(1)
		p.state[id].Store(uint32(WorkerIdle))
		p.armed.Clear(id)

		if p.notify != nil {
			select {
			case p.notify <- id:
			case <-p.done:
				return
			}
		}
	}
}

// LaunchAll arms every worker and wakes it. It never blocks.
// It is a no-op once the pool is closed.
func (p *SlicePool) LaunchAll() {
	if !p.running.Load() {
		return
	}

	for i := range p.workers {
		p.state[i].Store(uint32(WorkerArmed))
	}
	p.armed.SetAll()

	for _, w := range p.wake {
		select {
		case w <- struct{}{}:
		default:
			// A wake-up is already pending.
		}
	}
}

// NumDirty returns the number of armed workers. Zero means the last batch
// has completed.
func (p *SlicePool) NumDirty() int {
	return p.armed.Count()
}

// Armed reports whether worker i is armed. A worker clears its flag only
// after its callback has returned, so false means the worker's data is
// safe to read until the next LaunchAll.
func (p *SlicePool) Armed(i int) bool {
	return p.armed.Test(i)
}

// Ready reports whether no worker is armed.
func (p *SlicePool) Ready() bool {
	return p.armed.IsEmpty()
}

// Completed returns how many callbacks worker i has finished.
// It returns 0 for an index out of range.
func (p *SlicePool) Completed(i int) uint64 {
	if i < 0 || i >= p.workers {
		return 0
	}
	return p.completed[i].Load()
}

// State returns the lifecycle state of worker i.
func (p *SlicePool) State(i int) WorkerState {
	if i < 0 || i >= p.workers {
		return WorkerKilled
	}
	return WorkerState(p.state[i].Load())
}

// IsRunning returns true until Close is called.
func (p *SlicePool) IsRunning() bool {
	return p.running.Load()
}

// Close stops the pool. Callbacks in progress see their context cancelled.
// An armed worker that has not started either exits without computing or
// runs with an already cancelled context. Close waits for every worker
// goroutine to exit.
// Close is safe to call multiple times.
func (p *SlicePool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	p.cancel()
	close(p.done)
	p.wg.Wait()

	for i := range p.workers {
		p.state[i].Store(uint32(WorkerKilled))
	}
	p.logger.Debug("slice pool stopped", "workers", p.workers, "armed", p.armed.Count())
}
