package procon

import "math"

func lerp(min, max, t float64) float64 {
	return (1.0-t)*min + t*max
}

// Expand maps an 8-bit stick sample onto the full signed 16-bit axis range.
// The mapping is monotonic and hits both ends exactly: 0 maps to
// math.MinInt16 and 255 to math.MaxInt16.
func Expand(c uint8) int16 {
	d := float64(c) / math.MaxUint8
	if d < 0 {
		d = 0
	} else if d > 1 {
		d = 1
	}
	return int16(lerp(math.MinInt16, math.MaxInt16, d))
}
