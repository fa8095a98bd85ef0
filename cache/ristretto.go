package cache

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/dgraph-io/ristretto/v2"
)

// Ristretto adapts a ristretto cache, which runs its own sampled TinyLFU
// admission, to the Cache interface. Unlike the other caches it is safe for
// concurrent use and owns background goroutines: call Close when done.
//
// Every entry costs 1, so capacity bounds the entry count. Put waits for the
// write buffers to drain so that a Get issued right after sees the value,
// unless ristretto's admission policy rejected it.
type Ristretto[V any] struct {
	cache *ristretto.Cache[string, V]
}

// NewRistretto creates a ristretto backed cache holding about capacity
// entries.
func NewRistretto[V any](capacity int) (*Ristretto[V], error) {
	if capacity < 1 {
		return nil, errors.New("capacity must be positive").
			WithType(ErrTypeInvalidSizes).
			WithTag("capacity", capacity)
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters:        int64(capacity) * 10,
		MaxCost:            int64(capacity),
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.New("creating ristretto cache failed").
			WithType(ErrTypeInvalidSizes).
			WithTag("capacity", capacity).
			Wrap(err)
	}
	return &Ristretto[V]{cache: c}, nil
}

// Get implements Cache.
func (c *Ristretto[V]) Get(key string) (V, bool) {
	return c.cache.Get(key)
}

// Put implements Cache.
func (c *Ristretto[V]) Put(key string, value V) {
	c.cache.Set(key, value, 1)
	c.cache.Wait()
}

// Len implements Cache. It is derived from ristretto's metrics and is
// therefore approximate.
func (c *Ristretto[V]) Len() int {
	m := c.cache.Metrics
	added, evicted := m.KeysAdded(), m.KeysEvicted()
	if evicted >= added {
		return 0
	}
	return int(added - evicted)
}

// Purge implements Cache.
func (c *Ristretto[V]) Purge() {
	c.cache.Clear()
}

// Close stops ristretto's background goroutines.
func (c *Ristretto[V]) Close() {
	c.cache.Close()
}
