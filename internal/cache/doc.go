// Package cache provides the LRU cache behind the pipeline dedup cache.
//
// Cache[K, V] keeps entries in a map plus a doubly linked recency list,
// so lookups, insertions and evictions are O(1). It uses a soft limit:
// once exceeded, the least recently used quarter of the entries is
// dropped in one go and reported through the OnEvict callback, which is
// where owners release whatever the values hold.
//
//	c := cache.New[uint64, *Entry](256)
//	c.OnEvict(func(_ uint64, e *Entry) { e.Release() })
//	c.Set(key, e)
//	e, ok := c.Get(key)
//
// Cache is not safe for concurrent use.
package cache
