package ntree

// DataPoint is a Point stored in an NTree leaf node, along with the payload
// the caller attached to it.
type DataPoint[T any] struct {
	Point []float64
	// Arbitrary data attached to this Point, usually a light identifier.
	Data T
}

// Clone returns a copy of dp that shares no coordinate storage with it.
func (dp DataPoint[T]) Clone() DataPoint[T] {
	point := make([]float64, len(dp.Point))
	copy(point, dp.Point)
	return DataPoint[T]{Point: point, Data: dp.Data}
}

func cloneAll[T any](points []DataPoint[T]) []DataPoint[T] {
	if points == nil {
		return nil
	}
	out := make([]DataPoint[T], len(points))
	for i := range points {
		out[i] = points[i].Clone()
	}
	return out
}
