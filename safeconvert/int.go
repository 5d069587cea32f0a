package safeconvert

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var ErrIntegerOverflow = errors.New("integer overflow")

// Convert converts v to D, failing when v is not representable in D.
// A value is representable when it survives the round trip back to S and
// keeps its sign.
func Convert[D, S constraints.Integer](v S) (D, error) {
	d := D(v)
	if S(d) != v || (v < 0) != (d < 0) {
		return 0, errors.Wrapf(ErrIntegerOverflow, "%T value %d does not fit in %T", v, v, d)
	}
	return d, nil
}

// IntToUint converts int to uint safely, checking for negative values.
func IntToUint(i int) (uint, error) {
	return Convert[uint](i)
}

// UintToInt converts uint to int safely, checking for overflow.
func UintToInt(u uint) (int, error) {
	return Convert[int](u)
}

// Int64ToUint64 converts int64 to uint64 safely, checking for negative values.
func Int64ToUint64(i int64) (uint64, error) {
	return Convert[uint64](i)
}

// Uint64ToInt64 converts uint64 to int64 safely, checking for overflow.
func Uint64ToInt64(u uint64) (int64, error) {
	return Convert[int64](u)
}

// Uint64ToInt converts uint64 to int safely, checking for overflow.
func Uint64ToInt(u uint64) (int, error) {
	return Convert[int](u)
}
