// pkg/memcache/query_embeddings.go
package memcache

import (
	"strings"
	"sync"
	"time"
)

// QueryEmbeddingCache memoizes query-mode embeddings so that repeated
// searches for the same phrase do not burn embedding-provider quota.
type QueryEmbeddingCache interface {
	Get(query string) ([]float32, bool)
	Set(query string, vector []float32, ttl time.Duration)
}

type entry struct {
	vector    []float32
	expiresAt time.Time
}

type queryEmbeddings struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewQueryEmbeddingCache() QueryEmbeddingCache {
	return &queryEmbeddings{
		data: make(map[string]entry),
	}
}

func normalizeKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (c *queryEmbeddings) Get(query string) ([]float32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[normalizeKey(query)]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.vector, true
}

func (c *queryEmbeddings) Set(query string, vector []float32, ttl time.Duration) {
	if len(vector) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[normalizeKey(query)] = entry{
		vector:    vector,
		expiresAt: time.Now().Add(ttl),
	}
}
