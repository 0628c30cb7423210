// Package rendercache memoizes pre-rendered offscreen images under structured
// composite keys. Two flavors exist: a plain table whose entries live for the
// process lifetime (the tile/sprite vocabulary is small and bounded), and a
// time-bucketed table that evicts entries more than a few animation buckets
// old, so the table stays bounded no matter how long the process runs.
package rendercache

// Cache memoizes rendered values by a comparable composite key.
type Cache[K comparable, V any] struct {
	entries map[K]V
}

// New returns an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// GetOrRender returns the cached value for key, invoking render to produce it
// on a miss.
func (c *Cache[K, V]) GetOrRender(key K, render func() V) V {
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := render()
	c.entries[key] = v
	return v
}

// Len reports the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// BucketCache memoizes animated renders keyed by (K, time bucket). Advancing
// to a new bucket evicts everything rendered more than maxAge buckets ago.
type BucketCache[K comparable, V any] struct {
	entries map[bucketKey[K]]V
	current int64
	maxAge  int64
	onEvict func(V)
}

type bucketKey[K comparable] struct {
	key    K
	bucket int64
}

// NewBucketed returns an empty bucketed cache keeping maxAge buckets of
// history. onEvict, if non-nil, runs for each evicted value (used to release
// GPU-side images).
func NewBucketed[K comparable, V any](maxAge int64, onEvict func(V)) *BucketCache[K, V] {
	if maxAge < 1 {
		maxAge = 1
	}
	return &BucketCache[K, V]{
		entries: make(map[bucketKey[K]]V),
		maxAge:  maxAge,
		onEvict: onEvict,
	}
}

// GetOrRender returns the value for key at the given bucket. Moving to a newer
// bucket than any seen before triggers eviction of stale buckets.
func (c *BucketCache[K, V]) GetOrRender(key K, bucket int64, render func() V) V {
	if bucket > c.current {
		c.current = bucket
		c.evict()
	}
	bk := bucketKey[K]{key: key, bucket: bucket}
	if v, ok := c.entries[bk]; ok {
		return v
	}
	v := render()
	c.entries[bk] = v
	return v
}

func (c *BucketCache[K, V]) evict() {
	for bk, v := range c.entries {
		if c.current-bk.bucket > c.maxAge {
			if c.onEvict != nil {
				c.onEvict(v)
			}
			delete(c.entries, bk)
		}
	}
}

// Len reports the number of live entries across all buckets.
func (c *BucketCache[K, V]) Len() int {
	return len(c.entries)
}
