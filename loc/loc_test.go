package loc

import (
	"math"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vinerr/ntree"
)

func TestCartesian(t *testing.T) {
	half := math.Sqrt2 / 2

	tests := [][]float64{
		{0.0},
		{0.4},
		{1.0},
		{0.5, 0.5},
		{0.5, 1.0},
		{-half + 0.5, half + 0.5},
		{0.5, 0.5, 0.5},
		{-half + 0.5, half + 0.5, half + 0.5},
	}
	for _, coords := range tests {
		require.Equal(t, coords, Cartesian(coords...))
	}

	coords := []float64{0.1, 0.2}
	p := Cartesian(coords...)
	p[0] = 0.9
	require.Equal(t, 0.1, coords[0])
}

func TestPolar(t *testing.T) {
	quarter := math.Sqrt2 / 4
	mid2 := []float64{0.5, 0.5}
	mid3 := []float64{0.5, 0.5, 0.5}

	tests := []struct {
		name     string
		rho      float64
		angles   []float64
		center   []float64
		expected []float64
	}{
		{"2d center", 0, []float64{0}, mid2, []float64{0.5, 0.5}},
		{"2d top", 0.5, []float64{math.Pi / 2}, mid2, []float64{0.5, 1}},
		{"2d bottom", 0.5, []float64{3 * math.Pi / 2}, mid2, []float64{0.5, 0}},
		{"2d left", 0.5, []float64{math.Pi}, mid2, []float64{0, 0.5}},
		{"2d right", 0.5, []float64{0}, mid2, []float64{1, 0.5}},
		{"2d top left", 0.5, []float64{3 * math.Pi / 4}, mid2, []float64{0.5 - quarter, 0.5 + quarter}},
		{"3d center", 0, []float64{0, 0}, mid3, []float64{0.5, 0.5, 0.5}},
		{"3d front", 0.5, []float64{math.Pi / 2, 0}, mid3, []float64{0.5, 1, 0.5}},
		{"3d back", 0.5, []float64{-math.Pi / 2, 0}, mid3, []float64{0.5, 0, 0.5}},
		{"3d top", 0.5, []float64{math.Pi / 2, math.Pi / 2}, mid3, []float64{0.5, 0.5, 1}},
		{"3d bottom", 0.5, []float64{math.Pi / 2, -math.Pi / 2}, mid3, []float64{0.5, 0.5, 0}},
		{"3d left", 0.5, []float64{math.Pi, math.Pi / 2}, mid3, []float64{0, 0.5, 0.5}},
		{"3d right", 0.5, []float64{0, math.Pi / 2}, mid3, []float64{1, 0.5, 0.5}},
		{"3d top left front", 0.5, []float64{3 * math.Pi / 4, 3 * math.Pi / 4}, mid3, []float64{0.5 - quarter, 0.25, 0.75}},
		{"1d", 0.25, nil, []float64{0.5}, []float64{0.75}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := Polar(test.rho, test.angles, test.center)
			require.NoError(t, err)
			require.Len(t, p, len(test.expected))
			for i := range p {
				require.InDelta(t, test.expected[i], p[i], 0.001, i)
			}
		})
	}
}

func TestPolarInvalid(t *testing.T) {
	_, err := Polar(0.5, []float64{0, 0}, []float64{0.5, 0.5})
	require.True(t, errors.IsType(err, ntree.ErrTypeDimensionMismatch))

	_, err = Polar(0.5, nil, nil)
	require.True(t, errors.IsType(err, ntree.ErrTypeDimensionMismatch))
}
