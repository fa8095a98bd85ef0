package cache

import (
	"strconv"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newStringCache(t *testing.T, capacity int) *WTinyLFU[string, int] {
	c, err := NewWTinyLFU[string, int](capacity, StringHasher)
	require.NoError(t, err)
	return c
}

func TestDefaultSizes(t *testing.T) {
	window, probation, protected := DefaultSizes(1000)
	require.Equal(t, 10, window)
	require.Equal(t, 500, probation)
	require.Equal(t, 490, protected)

	for _, capacity := range []int{3, 7, 99, 100, 101, 12345} {
		window, probation, protected := DefaultSizes(capacity)
		require.Equal(t, capacity, window+probation+protected, capacity)
		require.Positive(t, window)
		require.Positive(t, probation)
		require.Positive(t, protected)
	}
}

func TestNewWTinyLFUInvalidSizes(t *testing.T) {
	_, err := NewWTinyLFUWithSizes[string, int](10, 500, 500, 1000, StringHasher)
	require.Error(t, err)
	require.True(t, errors.IsType(err, ErrTypeInvalidSizes))

	_, err = NewWTinyLFUWithSizes[string, int](0, 500, 500, 1000, StringHasher)
	require.Error(t, err)

	_, err = NewWTinyLFU[string, int](2, StringHasher)
	require.Error(t, err)

	_, err = NewWTinyLFUWithSizes[string, int](1, 1, 1, 3, nil)
	require.Error(t, err)
}

func TestWTinyLFUGetPut(t *testing.T) {
	c := newStringCache(t, 1000)

	_, ok := c.Get("a")
	require.False(t, ok)

	c.Put("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	c.Put("a", 2)
	v, ok = c.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, c.Len())

	c.Purge()
	require.Zero(t, c.Len())
	_, ok = c.Get("a")
	require.False(t, ok)
}

func TestWTinyLFUBounded(t *testing.T) {
	c := newStringCache(t, 100)
	for i := 0; i < 1000; i++ {
		c.Put(strconv.Itoa(i), i)
		require.LessOrEqual(t, c.Len(), 100)
	}
	require.Equal(t, 100, c.Len())

	window, probation, protected := c.Sizes()
	require.Equal(t, 1, window)
	require.Equal(t, 99, probation+protected)
}

func TestWTinyLFUPromotesOnHit(t *testing.T) {
	c := newStringCache(t, 100)
	c.Put("a", 1)
	c.Put("b", 2)

	// "a" left the window when "b" arrived and went to probation.
	window, probation, protected := c.Sizes()
	require.Equal(t, 1, window)
	require.Equal(t, 1, probation)
	require.Equal(t, 0, protected)

	_, ok := c.Get("a")
	require.True(t, ok)
	window, probation, protected = c.Sizes()
	require.Equal(t, 1, window)
	require.Equal(t, 0, probation)
	require.Equal(t, 1, protected)
}

func TestWTinyLFUAdmitsFrequentKeys(t *testing.T) {
	c := newStringCache(t, 100)
	for i := 0; i < 100; i++ {
		c.Put("cold-"+strconv.Itoa(i), i)
	}
	require.Equal(t, 100, c.Len())

	// a key requested often but never stored yet.
	for i := 0; i < 5; i++ {
		_, ok := c.Get("hot")
		require.False(t, ok)
	}
	c.Put("hot", -1)
	// pushes "hot" out of the window: it beats the oldest probation entry.
	c.Put("next", 0)
	require.True(t, c.Contains("hot"))

	// promote it, then flood the cache with one-off keys.
	_, ok := c.Get("hot")
	require.True(t, ok)
	for i := 0; i < 500; i++ {
		c.Put("scan-"+strconv.Itoa(i), i)
	}

	v, ok := c.Get("hot")
	require.True(t, ok)
	require.Equal(t, -1, v)
	require.Equal(t, 100, c.Len())
}

func TestWTinyLFURejectsColdCandidate(t *testing.T) {
	c := newStringCache(t, 100)
	for i := 0; i < 100; i++ {
		c.Put("warm-"+strconv.Itoa(i), i)
	}
	for i := 0; i < 99; i++ {
		for j := 0; j < 3; j++ {
			c.Get("warm-" + strconv.Itoa(i))
		}
	}

	c.Put("once", 1)
	c.Put("twice", 2)
	require.False(t, c.Contains("once"))
	require.Equal(t, 100, c.Len())
}
