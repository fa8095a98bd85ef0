// Package loc builds coordinate slices for an ntree.Index from cartesian or
// hyperspherical locations.
package loc

import (
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/vinerr/ntree"
)

// Cartesian returns the given coordinates as a new slice.
func Cartesian(coords ...float64) []float64 {
	p := make([]float64, len(coords))
	copy(p, coords)
	return p
}

// Polar converts hyperspherical coordinates centered on center into a
// cartesian point with len(center) dimensions.
//
// rho is the distance from center. angles holds the N-1 angular coordinates:
// every angle but the last ranges over [0, pi], the last over [0, 2*pi].
func Polar(rho float64, angles, center []float64) ([]float64, error) {
	if len(center) == 0 || len(angles) != len(center)-1 {
		return nil, errors.New("polar location needs one angle less than its dimension count").
			WithType(ntree.ErrTypeDimensionMismatch).
			WithTag("angles", len(angles)).
			WithTag("dimensions", len(center))
	}

	p := make([]float64, len(center))
	s := 1.0
	for i, a := range angles {
		p[i] = s*math.Cos(a)*rho + center[i]
		s *= math.Sin(a)
	}
	last := len(center) - 1
	p[last] = s*rho + center[last]
	return p, nil
}
