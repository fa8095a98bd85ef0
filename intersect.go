package ntree

import "math"

// BoxesIntersect reports whether the box spanning aMin..aMax overlaps the box
// spanning bMin..bMax. Intervals are closed, so boxes that only touch on a
// face, edge or corner intersect.
//
// It is assumed that aMin[i] <= aMax[i] and bMin[i] <= bMax[i] for every
// dimension i.
func BoxesIntersect(aMin, aMax, bMin, bMax []float64) bool {
	for i := range aMin {
		if aMax[i] < bMin[i] || aMin[i] > bMax[i] {
			return false
		}
	}
	return true
}

// PointInBox reports whether every coordinate of point lies within the closed
// interval [boxMin[i], boxMax[i]].
func PointInBox(point, boxMin, boxMax []float64) bool {
	for i := range point {
		if !(point[i] >= boxMin[i] && point[i] <= boxMax[i]) {
			return false
		}
	}
	return true
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 []float64) float64 {
	var sum float64
	for i := range p1 {
		d := p2[i] - p1[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// canonicalBox orders two arbitrary corners so that lo[i] <= hi[i].
func canonicalBox(c1, c2 []float64) (lo, hi []float64) {
	lo = make([]float64, len(c1))
	hi = make([]float64, len(c1))
	for i := range c1 {
		lo[i], hi[i] = c1[i], c2[i]
		if hi[i] < lo[i] {
			lo[i], hi[i] = hi[i], lo[i]
		}
	}
	return lo, hi
}

// cubeAround returns the axis-aligned cube of half-width r centered on p.
func cubeAround(p []float64, r float64) (lo, hi []float64) {
	lo = make([]float64, len(p))
	hi = make([]float64, len(p))
	for i := range p {
		lo[i] = p[i] - r
		hi[i] = p[i] + r
	}
	return lo, hi
}
