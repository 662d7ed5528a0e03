// Package parallel provides the slice worker pool for mcubes.
//
// The volume is divided into z-slices, one per worker, and each worker owns
// its slice for the lifetime of the pool. Key features:
//
//   - One long-lived goroutine per slice, parked on its own wake channel
//   - Armed workers tracked in a lock-free DirtyMask
//   - Per-worker completion counters for tests and statistics
//   - Optional completion notifications on a caller-supplied channel
//
// Thread safety: SlicePool methods are safe for concurrent use. The callback
// for worker i is never run concurrently with itself.
package parallel
