// Package cache provides the sharded LRU used to memoize slice geometry.
//
// # Sharded[K, V]
//
// A thread-safe LRU cache split into a power-of-two number of shards. The
// caller chooses how keys map to shards:
//
//	c := cache.NewSharded[key, int](4, 16, func(k key) uint64 { return uint64(k.index) })
//	c.Set(k, 42)
//	v, ok := c.Get(k)
//
// # GeometryCache[K]
//
// A Sharded cache of *mesh.Arena values that copies arenas in and out.
//
// # Thread Safety
//
// Both types are safe for concurrent use and must not be copied after
// creation.
package cache
