package parallel

import (
	"math/bits"
	"sync/atomic"
)

// DirtyMask is a fixed-size atomic bitmap with one bit per worker.
// It provides lock-free, thread-safe operations for concurrent access.
//
// The bitmap packs bits into uint64 words (64 workers per word).
// All methods are safe for concurrent use without external synchronization.
//
// SlicePool uses one mask for its armed flags: the launcher sets every bit,
// and each worker clears its own bit once its callback has returned.
type DirtyMask struct {
	// words is the atomic bitmap.
	// Word index = i / 64, bit position = i % 64.
	words []atomic.Uint64

	// n is the number of valid bits.
	n int
}

// NewDirtyMask creates a mask with n bits, all clear.
// Returns nil if n is zero or negative.
func NewDirtyMask(n int) *DirtyMask {
	if n <= 0 {
		return nil
	}
	return &DirtyMask{
		words: make([]atomic.Uint64, (n+63)/64),
		n:     n,
	}
}

// Clear clears bit i. Out of range indices are ignored.
func (d *DirtyMask) Clear(i int) {
	if i < 0 || i >= d.n {
		return
	}
	d.words[i/64].And(^(uint64(1) << (i & 63)))
}

// Test reports whether bit i is set. Out of range indices report false.
func (d *DirtyMask) Test(i int) bool {
	if i < 0 || i >= d.n {
		return false
	}
	return d.words[i/64].Load()&(1<<(i&63)) != 0
}

// SetAll sets every bit.
func (d *DirtyMask) SetAll() {
	full := d.n / 64
	for i := range full {
		d.words[i].Store(^uint64(0))
	}
	if rem := d.n % 64; rem > 0 {
		d.words[full].Store((uint64(1) << rem) - 1)
	}
}

// Count returns the number of set bits.
// The result is a snapshot; concurrent writers may change it immediately.
func (d *DirtyMask) Count() int {
	count := 0
	for i := range d.words {
		count += bits.OnesCount64(d.words[i].Load())
	}
	return count
}

// IsEmpty reports whether no bit is set.
func (d *DirtyMask) IsEmpty() bool {
	for i := range d.words {
		if d.words[i].Load() != 0 {
			return false
		}
	}
	return true
}
