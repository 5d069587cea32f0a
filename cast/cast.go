package cast

// Source-side wrappers carrying the Into methods registered for the active
// width class.
type (
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	I8  int8
	I16 int16
	I32 int32
	I64 int64
)

// UintFrom converts v to uint with a plain Go conversion.
func UintFrom[S UintSource](v S) uint {
	return uint(v)
}

// UintptrFrom converts v to uintptr with a plain Go conversion.
func UintptrFrom[S UintSource](v S) uintptr {
	return uintptr(v)
}

// IntFrom converts v to int with a plain Go conversion.
func IntFrom[S IntSource](v S) int {
	return int(v)
}
