package pipeline

import (
	"log/slog"

	"github.com/gogpu/pipestate/internal/cache"
)

// DefaultCacheSize is the soft limit of a Cache created with size 0.
const DefaultCacheSize = 256

// Cache maps pipelines to a canonical pipeline equal to them over a fixed
// set of categories, so state derived from a pipeline (a generated
// program, a backend pipeline object) can be built once per distinct
// state rather than once per pipeline.
//
// Entries are bucketed by the Hash of the categories and matched with
// EqualSet. The cache holds a reference on every canonical pipeline until
// it is evicted or the cache is cleared, which also keeps the pipeline it
// was copied from alive.
type Cache struct {
	set  CategorySet
	lru  *cache.Cache[uint64, []*Pipeline]
	hash *Hasher
}

// NewCache returns a cache keyed on the categories in set. size is the
// soft limit on distinct fingerprints; 0 selects DefaultCacheSize.
func NewCache(set CategorySet, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c := &Cache{
		set:  set,
		lru:  cache.New[uint64, []*Pipeline](size),
		hash: NewHasher(),
	}
	c.lru.OnEvict(func(_ uint64, bucket []*Pipeline) {
		for _, p := range bucket {
			p.Unref()
		}
	})
	return c
}

// Categories returns the categories entries are matched on.
func (c *Cache) Categories() CategorySet { return c.set }

func (c *Cache) fingerprint(p *Pipeline) uint64 {
	c.hash.Reset()
	for _, cat := range c.set.Categories() {
		HashState(p, cat, c.hash)
	}
	return c.hash.Sum64()
}

// Lookup returns the canonical pipeline for p. On a miss a copy of p
// becomes canonical and found is false. The returned pipeline belongs to
// the cache; callers that keep it past the next Lookup take a reference.
func (c *Cache) Lookup(p *Pipeline) (canonical *Pipeline, found bool) {
	p.checkLive()
	m := p.g.env.Metrics

	key := c.fingerprint(p)
	bucket, _ := c.lru.Get(key)
	for _, e := range bucket {
		if EqualSet(e, p, c.set) {
			m.cacheLookup(true)
			return e, true
		}
	}
	m.cacheLookup(false)

	e := p.Copy()
	e.SetLabel("cache entry")
	if n := c.lru.Set(key, append(bucket, e)); n > 0 {
		m.cacheEvicted(n)
		slogger().Debug("pipeline: cache evicted",
			slog.Int("fingerprints", n),
			slog.Int("remaining", c.lru.Len()))
	}
	return e, false
}

// Len returns the number of canonical pipelines held.
func (c *Cache) Len() int {
	n := 0
	c.lru.Range(func(_ uint64, bucket []*Pipeline) bool {
		n += len(bucket)
		return true
	})
	return n
}

// CacheStats are the counters of a Cache. They count fingerprints, so a
// lookup that finds its bucket but no equal pipeline is still a hit.
type CacheStats = cache.Stats

// Stats returns the fingerprint counters.
func (c *Cache) Stats() CacheStats { return c.lru.Stats() }

// Clear drops every entry and its reference.
func (c *Cache) Clear() {
	c.lru.Range(func(_ uint64, bucket []*Pipeline) bool {
		for _, p := range bucket {
			p.Unref()
		}
		return true
	})
	c.lru.Clear()
}
