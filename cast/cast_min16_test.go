//go:build convi_min16 || convi_min32 || convi_min64

package cast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortSourcesRoundTrip(t *testing.T) {
	for v := 0; v <= math.MaxUint16; v++ {
		u := uint16(v)
		assert.Equal(t, u, uint16(UintFrom(u)))
		assert.Equal(t, uint(u), U16(u).IntoUint())
		assert.Equal(t, uintptr(u), U16(u).IntoUintptr())
	}
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		i := int16(v)
		assert.Equal(t, i, int16(IntFrom(i)))
		assert.Equal(t, IntFrom(i), I16(i).IntoInt())
	}
	for v := 0; v <= math.MaxUint8; v++ {
		u := uint8(v)
		assert.Equal(t, u, uint8(IntFrom(u)))
		assert.Equal(t, IntFrom(u), U8(u).IntoInt())
	}
}
