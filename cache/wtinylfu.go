package cache

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// ErrTypeInvalidSizes marks a cache whose compartments do not add up to its
// capacity.
const ErrTypeInvalidSizes = "cache_invalid_sizes"

// DefaultSizes splits capacity into an admission window of about 1%, a
// probation segment of 50% and a protected segment taking the rest.
func DefaultSizes(capacity int) (window, probation, protected int) {
	window = capacity / 100
	if window < 1 {
		window = 1
	}
	probation = capacity / 2
	protected = capacity - window - probation
	return window, probation, protected
}

// WTinyLFU is a window TinyLFU cache.
//
// New keys enter a small LRU admission window. Keys pushed out of the window
// compete for a spot in the main cache: the candidate replaces the oldest
// probation entry only when the frequency sketch has seen it more often.
// A hit on a probation entry promotes it to the protected segment, whose
// overflow is demoted back to probation.
type WTinyLFU[K comparable, V any] struct {
	hasher Hasher[K]
	sketch *Sketch

	window    *simplelru.LRU[K, V]
	probation *simplelru.LRU[K, V]
	protected *simplelru.LRU[K, V]

	windowCap    int
	protectedCap int
	// probation and protected together never hold more than mainCap entries.
	mainCap int
}

// NewWTinyLFU creates a cache holding up to capacity entries, split with
// DefaultSizes.
func NewWTinyLFU[K comparable, V any](capacity int, hasher Hasher[K]) (*WTinyLFU[K, V], error) {
	if capacity < 3 {
		return nil, errors.New("capacity must hold at least one entry per segment").
			WithType(ErrTypeInvalidSizes).
			WithTag("capacity", capacity)
	}
	window, probation, protected := DefaultSizes(capacity)
	return NewWTinyLFUWithSizes[K, V](window, probation, protected, capacity, hasher)
}

// NewWTinyLFUWithSizes creates a cache with explicit compartment sizes. It
// returns an error unless every size is positive and they sum to capacity.
func NewWTinyLFUWithSizes[K comparable, V any](window, probation, protected, capacity int, hasher Hasher[K]) (*WTinyLFU[K, V], error) {
	if window < 1 || probation < 1 || protected < 1 {
		return nil, errors.New("cache segments must be positive").
			WithType(ErrTypeInvalidSizes).
			WithTag("window", window).
			WithTag("probation", probation).
			WithTag("protected", protected)
	}
	if window+probation+protected != capacity {
		return nil, errors.New("cache segments do not sum to capacity").
			WithType(ErrTypeInvalidSizes).
			WithTag("window", window).
			WithTag("probation", probation).
			WithTag("protected", protected).
			WithTag("capacity", capacity)
	}
	if hasher == nil {
		return nil, errors.New("missing hasher").
			WithType(ErrTypeInvalidSizes)
	}

	mainCap := probation + protected
	windowLRU, err := simplelru.NewLRU[K, V](window, nil)
	if err != nil {
		return nil, errors.New("creating window segment failed").Wrap(err)
	}
	// probation may borrow the room protected does not use yet.
	probationLRU, err := simplelru.NewLRU[K, V](mainCap, nil)
	if err != nil {
		return nil, errors.New("creating probation segment failed").Wrap(err)
	}
	protectedLRU, err := simplelru.NewLRU[K, V](protected, nil)
	if err != nil {
		return nil, errors.New("creating protected segment failed").Wrap(err)
	}

	return &WTinyLFU[K, V]{
		hasher:       hasher,
		sketch:       NewSketch(capacity),
		window:       windowLRU,
		probation:    probationLRU,
		protected:    protectedLRU,
		windowCap:    window,
		protectedCap: protected,
		mainCap:      mainCap,
	}, nil
}

// Get implements Cache.
func (c *WTinyLFU[K, V]) Get(key K) (V, bool) {
	c.sketch.Increment(c.hasher(key))

	if v, ok := c.window.Get(key); ok {
		return v, true
	}
	if v, ok := c.protected.Get(key); ok {
		return v, true
	}
	if v, ok := c.probation.Peek(key); ok {
		c.probation.Remove(key)
		c.promote(key, v)
		return v, true
	}

	var zero V
	return zero, false
}

// Put implements Cache.
func (c *WTinyLFU[K, V]) Put(key K, value V) {
	c.sketch.Increment(c.hasher(key))

	switch {
	case c.window.Contains(key):
		c.window.Add(key, value)
		return
	case c.protected.Contains(key):
		c.protected.Add(key, value)
		return
	case c.probation.Contains(key):
		c.probation.Remove(key)
		c.promote(key, value)
		return
	}

	if c.window.Len() < c.windowCap {
		c.window.Add(key, value)
		return
	}

	candidate, candidateValue, _ := c.window.RemoveOldest()
	c.window.Add(key, value)
	c.admit(candidate, candidateValue)
}

// promote moves a key into the protected segment, demoting the protected
// segment's oldest entry to probation when it is full.
func (c *WTinyLFU[K, V]) promote(key K, value V) {
	if c.protected.Len() >= c.protectedCap {
		if k, v, ok := c.protected.RemoveOldest(); ok {
			c.probation.Add(k, v)
		}
	}
	c.protected.Add(key, value)
}

// admit decides whether an entry evicted from the window enters the main
// cache.
func (c *WTinyLFU[K, V]) admit(candidate K, value V) {
	if c.probation.Len()+c.protected.Len() < c.mainCap {
		c.probation.Add(candidate, value)
		return
	}

	victim, _, ok := c.probation.GetOldest()
	if !ok {
		return
	}
	if c.sketch.Estimate(c.hasher(candidate)) <= c.sketch.Estimate(c.hasher(victim)) {
		return
	}
	c.probation.Remove(victim)
	c.probation.Add(candidate, value)
}

// Contains reports whether key is stored, without touching recency or
// frequency.
func (c *WTinyLFU[K, V]) Contains(key K) bool {
	return c.window.Contains(key) || c.probation.Contains(key) || c.protected.Contains(key)
}

// Len implements Cache.
func (c *WTinyLFU[K, V]) Len() int {
	return c.window.Len() + c.probation.Len() + c.protected.Len()
}

// Purge implements Cache. The frequency sketch is kept: it describes the key
// stream, not the stored values.
func (c *WTinyLFU[K, V]) Purge() {
	c.window.Purge()
	c.probation.Purge()
	c.protected.Purge()
}

// Sizes returns the window, probation and protected entry counts.
func (c *WTinyLFU[K, V]) Sizes() (window, probation, protected int) {
	return c.window.Len(), c.probation.Len(), c.protected.Len()
}
