// Package cast provides explicit integer conversions into the pointer-sized
// types uint, uintptr and int.
//
// UintFrom, UintptrFrom and IntFrom accept only source types that convert
// losslessly under the minimum target pointer width chosen at build time:
//
//	go build                    // 8-bit sources only
//	go build -tags convi_min32  // adds uint32 -> uint, int32 -> int, uint16 -> int
//	go build -tags convi_min64  // adds uint64 -> uint, int64 -> int, uint32 -> int
//
// Passing any other source type is a compile error. Selecting a width that the
// target cannot provide, for example convi_min64 with GOARCH=386, fails the
// build with an error naming requiresAtLeast64BitTarget.
//
// The wrapper types U8 through I64 expose the same conversions from the source
// side, e.g. cast.U32(n).IntoUint().
//
// ExpectFrom covers the remaining conversions whose success depends on the
// value. It panics when the value does not fit, so it is meant for values the
// caller already knows to be in range.
package cast

//go:generate go run ../cmd/convigen --out .
