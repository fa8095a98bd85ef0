package ntree

import (
	"encoding/binary"
	"math"
)

// boxKey encodes the exact bit patterns (sign, exponent and mantissa) of
// both corners, dimension by dimension. Two boxes share a key only when all
// their coordinates are bit-for-bit identical, so 0.0 and -0.0 differ.
func boxKey(lo, hi []float64) string {
	buf := make([]byte, 0, 16*len(lo))
	for i := range lo {
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(lo[i]))
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(hi[i]))
	}
	return string(buf)
}
