// Package cache provides the bounded result caches used by ntree to remember
// box query results between animation frames.
//
// WTinyLFU is the default policy. LRU, Ristretto and Nop satisfy the same
// Cache interface so they can be swapped in without touching the index.
package cache

import "github.com/cespare/xxhash/v2"

// Cache is a bounded key/value store. Implementations are not safe for
// concurrent use unless stated otherwise.
type Cache[K comparable, V any] interface {
	// Get returns the value stored for key. A lookup may update the
	// policy's recency or frequency bookkeeping.
	Get(key K) (V, bool)
	// Put stores value for key, evicting another entry when the cache is full.
	Put(key K, value V)
	// Len returns the number of stored entries.
	Len() int
	// Purge removes every entry.
	Purge()
}

// Hasher maps a key to the 64 bit hash fed to the frequency sketch.
type Hasher[K comparable] func(key K) uint64

// StringHasher hashes string keys with xxhash.
func StringHasher(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Nop never stores anything.
type Nop[K comparable, V any] struct{}

func (Nop[K, V]) Get(key K) (V, bool) {
	var zero V
	return zero, false
}

func (Nop[K, V]) Put(key K, value V) {}

func (Nop[K, V]) Len() int { return 0 }

func (Nop[K, V]) Purge() {}
