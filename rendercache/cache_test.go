package rendercache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tileKey struct {
	id   int
	seed uint32
}

func TestCacheRendersOnce(t *testing.T) {
	c := New[tileKey, int]()

	calls := 0
	render := func() int {
		calls++
		return 42
	}

	require.Equal(t, 42, c.GetOrRender(tileKey{1, 7}, render))
	require.Equal(t, 42, c.GetOrRender(tileKey{1, 7}, render))
	assert.Equal(t, 1, calls, "second lookup must hit the cache")

	c.GetOrRender(tileKey{1, 8}, render)
	assert.Equal(t, 2, calls, "different seed is a different entry")
	assert.Equal(t, 2, c.Len())
}

func TestBucketCacheEvictsStaleBuckets(t *testing.T) {
	var evicted []int
	c := NewBucketed[tileKey, int](2, func(v int) { evicted = append(evicted, v) })

	c.GetOrRender(tileKey{5, 0}, 0, func() int { return 100 })
	c.GetOrRender(tileKey{5, 0}, 1, func() int { return 101 })
	c.GetOrRender(tileKey{5, 0}, 2, func() int { return 102 })
	assert.Equal(t, 3, c.Len())
	assert.Empty(t, evicted)

	// Bucket 3 pushes bucket 0 out of the retention window.
	c.GetOrRender(tileKey{5, 0}, 3, func() int { return 103 })
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{100}, evicted)
}

func TestBucketCacheOldBucketStillServed(t *testing.T) {
	c := NewBucketed[tileKey, int](2, nil)

	c.GetOrRender(tileKey{2, 0}, 4, func() int { return 1 })

	// A lookup for a bucket inside the window must not re-render.
	calls := 0
	got := c.GetOrRender(tileKey{2, 0}, 4, func() int { calls++; return 2 })
	assert.Equal(t, 1, got)
	assert.Zero(t, calls)
}
