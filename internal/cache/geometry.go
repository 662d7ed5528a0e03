package cache

import "github.com/gogpu/mcubes/mesh"

// GeometryCache memoizes computed slice geometry.
//
// Arenas are copied on the way in and on the way out, so the cache never
// shares storage with a slice that is still being written. Keys are routed
// to shards with shardOf; routing by slice index gives every worker its own
// shard and lock.
type GeometryCache[K comparable] struct {
	c *Sharded[K, *mesh.Arena]
}

// NewGeometryCache creates a cache with the given number of shards and
// per-shard capacity.
func NewGeometryCache[K comparable](shards, perShard int, shardOf ShardFunc[K]) *GeometryCache[K] {
	return &GeometryCache[K]{c: NewSharded[K, *mesh.Arena](shards, perShard, shardOf)}
}

// Load copies the geometry cached under key into dst. It returns false, and
// leaves dst untouched, on a miss or when dst has a different layout.
func (g *GeometryCache[K]) Load(key K, dst *mesh.Arena) bool {
	src, ok := g.c.Get(key)
	if !ok {
		return false
	}
	return dst.CopyFrom(src)
}

// Store caches a compact copy of src under key.
func (g *GeometryCache[K]) Store(key K, src *mesh.Arena) {
	g.c.Set(key, src.Clone())
}

// Clear drops every cached arena.
func (g *GeometryCache[K]) Clear() {
	g.c.Clear()
}

// Stats returns cache statistics.
func (g *GeometryCache[K]) Stats() Stats {
	return g.c.Stats()
}
