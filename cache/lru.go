package cache

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRU is a plain least recently used cache.
type LRU[K comparable, V any] struct {
	lru *simplelru.LRU[K, V]
}

// NewLRU creates an LRU cache holding up to capacity entries.
func NewLRU[K comparable, V any](capacity int) (*LRU[K, V], error) {
	lru, err := simplelru.NewLRU[K, V](capacity, nil)
	if err != nil {
		return nil, errors.New("creating lru cache failed").
			WithType(ErrTypeInvalidSizes).
			WithTag("capacity", capacity).
			Wrap(err)
	}
	return &LRU[K, V]{lru: lru}, nil
}

// Get implements Cache.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

// Put implements Cache.
func (c *LRU[K, V]) Put(key K, value V) {
	c.lru.Add(key, value)
}

// Len implements Cache.
func (c *LRU[K, V]) Len() int {
	return c.lru.Len()
}

// Purge implements Cache.
func (c *LRU[K, V]) Purge() {
	c.lru.Purge()
}
