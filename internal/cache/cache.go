package cache

// Cache is a generic LRU cache with a soft limit.
// When the cache exceeds softLimit, the least recently used quarter of
// the entries is evicted and each evicted value is passed to the evict
// callback.
//
// Cache is not safe for concurrent use. It serves a single state graph,
// which belongs to one render thread.
type Cache[K comparable, V any] struct {
	entries   map[K]*cacheEntry[K, V]
	lru       *lruList[K]
	softLimit int
	onEvict   func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// cacheEntry holds a cached value with its position in the LRU list.
type cacheEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[K, V]),
		lru:       newLRUList[K](),
		softLimit: softLimit,
	}
}

// OnEvict sets the function called for every entry dropped by eviction.
// Entries removed with Delete or Clear are not reported.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

// Get retrieves a value from the cache and marks it recently used.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.lru.MoveToFront(entry.node)
	return entry.value, true
}

// Peek retrieves a value without touching its recency or the counters.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Set stores a value in the cache, replacing any value under key.
// If the cache exceeds softLimit after insertion, oldest entries are
// evicted. It returns the number of evicted entries.
func (c *Cache[K, V]) Set(key K, value V) int {
	if entry, ok := c.entries[key]; ok {
		entry.value = value
		c.lru.MoveToFront(entry.node)
		return 0
	}

	c.entries[key] = &cacheEntry[K, V]{
		value: value,
		node:  c.lru.PushFront(key),
	}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		return c.evictOldest()
	}
	return 0
}

// Delete removes an entry from the cache.
// Returns the removed value and true if the entry was found.
func (c *Cache[K, V]) Delete(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.lru.Remove(entry.node)
	delete(c.entries, key)
	return entry.value, true
}

// Range calls fn for each entry from most to least recently used until
// fn returns false. fn must not modify the cache.
func (c *Cache[K, V]) Range(fn func(K, V) bool) {
	for n := c.lru.head; n != nil; n = n.next {
		if !fn(n.key, c.entries[n.key].value) {
			return
		}
	}
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*cacheEntry[K, V])
	c.lru.Clear()
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Capacity returns the soft limit of the cache.
func (c *Cache[K, V]) Capacity() int {
	return c.softLimit
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.softLimit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// ResetStats zeroes the hit, miss and eviction counters.
func (c *Cache[K, V]) ResetStats() {
	c.hits, c.misses, c.evictions = 0, 0, 0
}

// evictOldest removes the least recently used entries until the cache is
// at three quarters of its soft limit.
func (c *Cache[K, V]) evictOldest() int {
	targetSize := max(c.softLimit*3/4, 1)

	n := 0
	for len(c.entries) > targetSize {
		key, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		entry := c.entries[key]
		delete(c.entries, key)
		n++
		if c.onEvict != nil {
			c.onEvict(key, entry.value)
		}
	}
	c.evictions += uint64(n)
	return n
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit.
	Capacity int
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries.
	Evictions uint64
}
