package procon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandBounds(t *testing.T) {
	assert.Equal(t, int16(math.MinInt16), Expand(0))
	assert.Equal(t, int16(math.MaxInt16), Expand(math.MaxUint8))
}

func TestExpandMonotonic(t *testing.T) {
	prev := Expand(0)
	for c := 1; c <= math.MaxUint8; c++ {
		cur := Expand(uint8(c))
		assert.GreaterOrEqual(t, cur, prev, "sample %d", c)
		prev = cur
	}
}

func TestExpandCenter(t *testing.T) {
	// The midpoint of the sample range lands near the axis center.
	v := Expand(0x80)
	assert.InDelta(t, 0, float64(v), 260)
}
