package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryEmbeddingCache(t *testing.T) {
	cache := NewQueryEmbeddingCache()
	vector := []float32{0.1, 0.2, 0.3}

	t.Run("miss on empty cache", func(t *testing.T) {
		_, ok := cache.Get("rooftop wedding")
		assert.False(t, ok)
	})

	t.Run("hit after set", func(t *testing.T) {
		cache.Set("rooftop wedding", vector, time.Minute)
		got, ok := cache.Get("rooftop wedding")
		require.True(t, ok)
		assert.Equal(t, vector, got)
	})

	t.Run("keys are case and whitespace insensitive", func(t *testing.T) {
		got, ok := cache.Get("  Rooftop WEDDING ")
		require.True(t, ok)
		assert.Equal(t, vector, got)
	})

	t.Run("expired entries miss", func(t *testing.T) {
		cache.Set("short lived", vector, -time.Second)
		_, ok := cache.Get("short lived")
		assert.False(t, ok)
	})

	t.Run("empty vectors are not cached", func(t *testing.T) {
		cache.Set("nothing", nil, time.Minute)
		_, ok := cache.Get("nothing")
		assert.False(t, ok)
	})
}
