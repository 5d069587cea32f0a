package safeconvert

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSafeIntToUint(t *testing.T) {
	tests := []struct {
		input       int
		expected    uint
		errExpected bool
	}{
		{10, 10, false},
		{-1, 0, true},
		{0, 0, false},
		{math.MinInt, 0, true},
	}

	for _, test := range tests {
		result, err := IntToUint(test.input)
		if test.errExpected {
			assert.Error(t, err, "Expected an error for input: %d", test.input)
		} else {
			assert.NoError(t, err, "Did not expect an error for input: %d", test.input)
			assert.Equal(t, test.expected, result, "Expected result does not match")
		}
	}
}

func TestSafeUintToInt(t *testing.T) {
	tests := []struct {
		input       uint
		expected    int
		errExpected bool
	}{
		{10, 10, false},
		{uint(math.MaxInt), math.MaxInt, false},
		{uint(math.MaxInt) + 1, 0, true},
	}

	for _, test := range tests {
		result, err := UintToInt(test.input)
		if test.errExpected {
			assert.Error(t, err, "Expected an error for input: %d", test.input)
		} else {
			assert.NoError(t, err, "Did not expect an error for input: %d", test.input)
			assert.Equal(t, test.expected, result, "Expected result does not match")
		}
	}
}

func TestSafeInt64ToUint64(t *testing.T) {
	tests := []struct {
		input       int64
		expected    uint64
		errExpected bool
	}{
		{10, 10, false},
		{-1, 0, true},
		{0, 0, false},
	}

	for _, test := range tests {
		result, err := Int64ToUint64(test.input)
		if test.errExpected {
			assert.Error(t, err, "Expected an error for input: %d", test.input)
		} else {
			assert.NoError(t, err, "Did not expect an error for input: %d", test.input)
			assert.Equal(t, test.expected, result, "Expected result does not match")
		}
	}
}

func TestSafeUint64ToInt64(t *testing.T) {
	tests := []struct {
		input       uint64
		expected    int64
		errExpected bool
	}{
		{10, 10, false},
		{math.MaxInt64, math.MaxInt64, false},
		{math.MaxInt64 + 1, 0, true},
	}

	for _, test := range tests {
		result, err := Uint64ToInt64(test.input)
		if test.errExpected {
			assert.Error(t, err, "Expected an error for input: %d", test.input)
		} else {
			assert.NoError(t, err, "Did not expect an error for input: %d", test.input)
			assert.Equal(t, test.expected, result, "Expected result does not match")
		}
	}
}

func TestSafeUint64ToInt(t *testing.T) {
	result, err := Uint64ToInt(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, result)

	_, err = Uint64ToInt(math.MaxUint64)
	assert.Error(t, err)
}

func TestConvertNarrowing(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		got, err := Convert[uint8](uint32(200))
		assert.NoError(t, err)
		assert.Equal(t, uint8(200), got)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := Convert[uint8](uint32(300))
		assert.True(t, errors.Is(err, ErrIntegerOverflow))
		assert.EqualError(t, err, "uint32 value 300 does not fit in uint8: integer overflow")
	})

	t.Run("signed bounds", func(t *testing.T) {
		got, err := Convert[int8](int64(-128))
		assert.NoError(t, err)
		assert.Equal(t, int8(-128), got)

		_, err = Convert[int8](int64(-129))
		assert.ErrorIs(t, err, ErrIntegerOverflow)
		_, err = Convert[int8](int64(128))
		assert.ErrorIs(t, err, ErrIntegerOverflow)
	})
}

func TestConvertSignReinterpretation(t *testing.T) {
	// Both directions keep the bit pattern but flip the sign.
	_, err := Convert[uint8](int8(-1))
	assert.ErrorIs(t, err, ErrIntegerOverflow)

	_, err = Convert[int8](uint8(200))
	assert.ErrorIs(t, err, ErrIntegerOverflow)

	got, err := Convert[int8](uint8(127))
	assert.NoError(t, err)
	assert.Equal(t, int8(127), got)
}

func TestConvertWideningNeverFails(t *testing.T) {
	for _, v := range []uint32{0, 1, math.MaxUint16, math.MaxUint32} {
		got, err := Convert[uint64](v)
		assert.NoError(t, err)
		assert.Equal(t, uint64(v), got)
	}
	for _, v := range []int16{math.MinInt16, -1, 0, math.MaxInt16} {
		got, err := Convert[int64](v)
		assert.NoError(t, err)
		assert.Equal(t, int64(v), got)
	}
}
