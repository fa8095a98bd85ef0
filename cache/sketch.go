package cache

const (
	sketchDepth = 4
	// counters saturate at 15, the value a 4 bit counter would hold.
	sketchMaxCount = 15
	sketchMinWidth = 16
	// the sketch halves every counter after sampleFactor*capacity increments
	// so old popularity fades.
	sampleFactor = 10
)

// Sketch is a count-min sketch estimating how often a hash was seen
// recently. It never underestimates a frequency, up to the periodic aging.
type Sketch struct {
	rows      [sketchDepth][]uint8
	mask      uint64
	additions int
	resetAt   int
}

// NewSketch returns a sketch sized for a cache holding capacity entries.
func NewSketch(capacity int) *Sketch {
	width := sketchMinWidth
	for width < capacity {
		width <<= 1
	}

	s := &Sketch{
		mask:    uint64(width - 1),
		resetAt: sampleFactor * capacity,
	}
	if s.resetAt < width {
		s.resetAt = width
	}
	for i := range s.rows {
		s.rows[i] = make([]uint8, width)
	}
	return s
}

// index derives the column of row i with double hashing.
func (s *Sketch) index(h uint64, i int) uint64 {
	h2 := (h >> 32) | (h << 32) | 1
	return (h + uint64(i)*h2) & s.mask
}

// Increment records one occurrence of h.
func (s *Sketch) Increment(h uint64) {
	incremented := false
	for i := range s.rows {
		idx := s.index(h, i)
		if s.rows[i][idx] < sketchMaxCount {
			s.rows[i][idx]++
			incremented = true
		}
	}
	if !incremented {
		return
	}

	s.additions++
	if s.additions >= s.resetAt {
		s.reset()
	}
}

// Estimate returns the minimum counter across rows for h.
func (s *Sketch) Estimate(h uint64) uint8 {
	min := uint8(sketchMaxCount)
	for i := range s.rows {
		if c := s.rows[i][s.index(h, i)]; c < min {
			min = c
		}
	}
	return min
}

// reset halves every counter.
func (s *Sketch) reset() {
	for i := range s.rows {
		for j := range s.rows[i] {
			s.rows[i][j] >>= 1
		}
	}
	s.additions /= 2
}
