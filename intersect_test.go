package ntree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxesIntersect(t *testing.T) {
	tests := []struct {
		name                   string
		aMin, aMax, bMin, bMax []float64
	}{
		{"a contains b", []float64{0, 0, 0}, []float64{2, 2, 2}, []float64{0.5, 0.5, 0.5}, []float64{1.5, 1.5, 1.5}},
		{"a overlaps b start", []float64{0, 0, 0}, []float64{1, 1, 1}, []float64{0.5, 0.5, 0.5}, []float64{1.5, 1.5, 1.5}},
		{"b contains a", []float64{0.5, 0.5, 0.5}, []float64{1, 1, 1}, []float64{0, 0, 0}, []float64{1.5, 1.5, 1.5}},
		{"a overlaps b end", []float64{0.5, 0.5, 0.5}, []float64{1.5, 1.5, 1.5}, []float64{0, 0, 0}, []float64{1, 1, 1}},
		{"same box", []float64{0, 0, 0}, []float64{1, 1, 1}, []float64{0, 0, 0}, []float64{1, 1, 1}},
		{"shared min corner", []float64{0, 0, 0}, []float64{1, 1, 1}, []float64{0, 0, 0}, []float64{0.5, 0.5, 0.5}},
		{"shared max corner", []float64{0.5, 0.5, 0.5}, []float64{1, 1, 1}, []float64{0, 0, 0}, []float64{1, 1, 1}},
		{"touching corners", []float64{0, 0, 0}, []float64{1, 1, 1}, []float64{1, 1, 1}, []float64{2, 2, 2}},
		{"touching corners reversed", []float64{1, 1, 1}, []float64{2, 2, 2}, []float64{0, 0, 0}, []float64{1, 1, 1}},
		{"overlap with one shared face", []float64{0, 0, 0}, []float64{2, 2, 2}, []float64{0, 0.5, 0}, []float64{1, 1, 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.True(t, BoxesIntersect(test.aMin, test.aMax, test.bMin, test.bMax))
			require.True(t, BoxesIntersect(test.bMin, test.bMax, test.aMin, test.aMax))
		})
	}
}

func TestBoxesDoNotIntersect(t *testing.T) {
	require.False(t, BoxesIntersect(
		[]float64{0, 0, 0}, []float64{1, 1, 1},
		[]float64{2, 2, 2}, []float64{3, 3, 3},
	))
	require.False(t, BoxesIntersect(
		[]float64{2, 2, 2}, []float64{3, 3, 3},
		[]float64{0, 0, 0}, []float64{1, 1, 1},
	))
	// overlapping in every dimension but the last one.
	require.False(t, BoxesIntersect(
		[]float64{0, 0, 7}, []float64{1, 1, 8},
		[]float64{0.5, 0.5, 9}, []float64{1.5, 1.5, 10},
	))
}

func TestPointInBox(t *testing.T) {
	// on border
	require.True(t, PointInBox([]float64{0}, []float64{0}, []float64{1}))
	require.True(t, PointInBox([]float64{1}, []float64{0}, []float64{1}))

	// point in box
	require.True(t, PointInBox([]float64{0.2}, []float64{0}, []float64{1}))
	require.True(t, PointInBox([]float64{0.5, 0.5}, []float64{0, 0}, []float64{1, 1}))
	require.True(t, PointInBox([]float64{1, 1, 1}, []float64{0, 0, 0}, []float64{1, 1, 1}))
	require.True(t, PointInBox([]float64{0, 0, 0, 0}, []float64{0, 0, 0, 0}, []float64{1, 1, 1, 1}))

	// point not in box
	require.False(t, PointInBox([]float64{-0.2}, []float64{0}, []float64{1}))
	require.False(t, PointInBox([]float64{1.5, 1.5}, []float64{0, 0}, []float64{1, 1}))
	require.False(t, PointInBox([]float64{math.NaN()}, []float64{0}, []float64{1}))
}

func TestDistance(t *testing.T) {
	require.Equal(t, 1.0, Distance([]float64{0, 0}, []float64{1, 0}))
	require.Equal(t, 1.0, Distance([]float64{0, 0}, []float64{0, 1}))
	require.Equal(t, 1.0, Distance([]float64{0, 0}, []float64{-1, 0}))
	require.Equal(t, 1.0, Distance([]float64{0, 0}, []float64{0, -1}))
	require.Equal(t, math.Sqrt(2), Distance([]float64{0, 0}, []float64{1, 1}))
	require.Equal(t, 0.5, Distance([]float64{0.5, 1}, []float64{1, 1}))
	require.Equal(t, 0.5, Distance([]float64{1, 0.5}, []float64{1, 1}))
}

func TestCanonicalBox(t *testing.T) {
	lo, hi := canonicalBox([]float64{1, 0, 0.5}, []float64{0, 1, 0.5})
	require.Equal(t, []float64{0, 0, 0.5}, lo)
	require.Equal(t, []float64{1, 1, 0.5}, hi)
}
