package cache

// recency is one link in a shard's recency ring. It carries the key so
// eviction can delete the map entry without a lookup.
type recency[K comparable] struct {
	key      K
	newer    *recency[K]
	older    *recency[K]
	detached bool
}

// lruList orders a shard's keys by last use. It is a circular list around a
// sentinel: sentinel.older is the newest key, sentinel.newer the oldest.
// The zero value is ready to use. It is not safe for concurrent use; the
// owning shard's mutex guards it.
type lruList[K comparable] struct {
	sentinel recency[K]
	n        int
}

func (l *lruList[K]) ring() *recency[K] {
	if l.sentinel.newer == nil {
		l.sentinel.newer = &l.sentinel
		l.sentinel.older = &l.sentinel
	}
	return &l.sentinel
}

// Len returns the number of keys.
func (l *lruList[K]) Len() int { return l.n }

// PushFront records key as the newest and returns its link.
func (l *lruList[K]) PushFront(key K) *recency[K] {
	r := &recency[K]{key: key}
	l.insertNewest(r)
	return r
}

// MoveToFront records a use of r.
func (l *lruList[K]) MoveToFront(r *recency[K]) {
	if r == nil || r.detached || l.ring().older == r {
		return
	}
	l.detach(r)
	l.insertNewest(r)
}

// RemoveOldest drops the least recently used key and returns it.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	s := l.ring()
	if s.newer == s {
		var zero K
		return zero, false
	}
	r := s.newer
	l.detach(r)
	return r.key, true
}

// Clear drops every key.
func (l *lruList[K]) Clear() {
	s := l.ring()
	for r := s.newer; r != s; {
		next := r.newer
		r.newer, r.older, r.detached = nil, nil, true
		r = next
	}
	s.newer, s.older = s, s
	l.n = 0
}

// insertNewest links r between the current newest key and the sentinel.
func (l *lruList[K]) insertNewest(r *recency[K]) {
	s := l.ring()
	newest := s.older
	r.older = newest
	r.newer = s
	newest.newer = r
	s.older = r
	r.detached = false
	l.n++
}

func (l *lruList[K]) detach(r *recency[K]) {
	r.older.newer = r.newer
	r.newer.older = r.older
	r.newer, r.older, r.detached = nil, nil, true
	l.n--
}
