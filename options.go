package ntree

import (
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

const (
	// DefaultCacheCapacity is the number of box query results kept by default.
	DefaultCacheCapacity = 1000
	// DefaultMaxDepth bounds division so that repeated coordinates cannot
	// divide forever.
	DefaultMaxDepth = 24
	// DefaultName labels the metrics of indexes created without WithName.
	DefaultName = "default"
)

// CachePolicy selects the result cache an Index builds.
type CachePolicy int

const (
	// CacheWTinyLFU is a window TinyLFU cache, the default.
	CacheWTinyLFU CachePolicy = iota
	// CacheLRU is a plain least recently used cache.
	CacheLRU
	// CacheRistretto delegates to a ristretto cache.
	CacheRistretto
	// CacheNone disables result caching.
	CacheNone
)

var cachePolicyNames = map[CachePolicy]string{
	CacheWTinyLFU:  "wtinylfu",
	CacheLRU:       "lru",
	CacheRistretto: "ristretto",
	CacheNone:      "none",
}

func (p CachePolicy) String() string {
	if name, ok := cachePolicyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseCachePolicy returns the policy named s. The empty string selects
// CacheWTinyLFU.
func ParseCachePolicy(s string) (CachePolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CacheWTinyLFU, nil
	}
	for p, name := range cachePolicyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, errors.New("unknown cache policy").
		WithType(ErrTypeInvalidConfig).
		WithTag("policy", s)
}

type options struct {
	name          string
	maxDepth      int
	policy        DivisionPolicy
	cachePolicy   CachePolicy
	cacheCapacity int
}

// Option configures an Index.
type Option func(*options)

// WithName sets the name used as the metrics label of the index.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMaxDepth sets the depth at which leaves stop dividing.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithDivisionPolicy replaces the CountThreshold built from the division
// threshold given to New.
func WithDivisionPolicy(p DivisionPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithCachePolicy selects the result cache.
func WithCachePolicy(p CachePolicy) Option {
	return func(o *options) {
		o.cachePolicy = p
	}
}

// WithCacheCapacity sets how many box query results are kept.
func WithCacheCapacity(capacity int) Option {
	return func(o *options) {
		o.cacheCapacity = capacity
	}
}
