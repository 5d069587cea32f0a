package widthclass

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// Kind identifies an integer type taking part in a conversion pair.
type Kind int

const (
	U8 Kind = iota
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
	Uint
	Uintptr
	Int
)

type kindInfo struct {
	goType  string
	wrapper string
	method  string
	from    string
}

// Kinds without a goType have no Go counterpart.
var kinds = map[Kind]kindInfo{
	U8:      {goType: "uint8", wrapper: "U8"},
	U16:     {goType: "uint16", wrapper: "U16"},
	U32:     {goType: "uint32", wrapper: "U32"},
	U64:     {goType: "uint64", wrapper: "U64"},
	U128:    {},
	I8:      {goType: "int8", wrapper: "I8"},
	I16:     {goType: "int16", wrapper: "I16"},
	I32:     {goType: "int32", wrapper: "I32"},
	I64:     {goType: "int64", wrapper: "I64"},
	I128:    {},
	Uint:    {goType: "uint", method: "IntoUint", from: "UintFrom"},
	Uintptr: {goType: "uintptr", method: "IntoUintptr", from: "UintptrFrom"},
	Int:     {goType: "int", method: "IntoInt", from: "IntFrom"},
}

var kindNames = map[Kind]string{
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", U128: "u128",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64", I128: "i128",
	Uint: "uint", Uintptr: "uintptr", Int: "int",
}

func (k Kind) String() string {
	return kindNames[k]
}

// GoType returns the Go type name, or "" for kinds Go cannot express.
func (k Kind) GoType() string {
	return kinds[k].goType
}

func (k Kind) Native() bool {
	return k.GoType() != ""
}

// Wrapper returns the name of the cast package type carrying Into methods.
func (k Kind) Wrapper() string {
	return kinds[k].wrapper
}

// Method returns the Into method name for a destination kind.
func (k Kind) Method() string {
	return kinds[k].method
}

// FromFunc returns the name of the cast function producing a destination kind.
func (k Kind) FromFunc() string {
	return kinds[k].from
}

// Pair is a registered conversion from Source into the pointer-sized Dest,
// available from Class upward.
type Pair struct {
	Source Kind
	Dest   Kind
	Class  Class
}

func (p Pair) Native() bool {
	return p.Source.Native() && p.Dest.Native()
}

// Destinations lists the pointer-sized destination kinds.
func Destinations() []Kind {
	return []Kind{Uint, Uintptr, Int}
}

// Every row is lossless for any target whose pointer width is at least Class.
var candidates = []Pair{
	{U8, Uint, Base},
	{U8, Uintptr, Base},
	{I8, Int, Base},

	{U16, Uint, Min16},
	{U16, Uintptr, Min16},
	{I16, Int, Min16},
	{U8, Int, Min16},

	{U32, Uint, Min32},
	{U32, Uintptr, Min32},
	{I32, Int, Min32},
	{U16, Int, Min32},

	{U64, Uint, Min64},
	{U64, Uintptr, Min64},
	{I64, Int, Min64},
	{U32, Int, Min64},

	{U128, Uint, Min128},
	{U128, Uintptr, Min128},
	{I128, Int, Min128},
	{U64, Int, Min128},
}

// Candidates returns a copy of the full candidate table.
func Candidates() []Pair {
	return append([]Pair(nil), candidates...)
}

// Pairs returns every candidate enabled by c, in table order.
func Pairs(c Class) []Pair {
	return lo.Filter(candidates, func(p Pair, _ int) bool { return p.Class <= c })
}

// NativePairs returns the pairs enabled by c that Go can express.
func NativePairs(c Class) []Pair {
	return lo.Filter(Pairs(c), func(p Pair, _ int) bool { return p.Native() })
}

// Sources returns the distinct native source kinds converting into dest
// under c, in table order.
func Sources(c Class, dest Kind) []Kind {
	into := lo.Filter(NativePairs(c), func(p Pair, _ int) bool { return p.Dest == dest })
	return lo.Uniq(lo.Map(into, func(p Pair, _ int) Kind { return p.Source }))
}

type route struct {
	source Kind
	dest   Kind
}

// Table answers membership queries for a single class.
type Table struct {
	class   Class
	enabled mapset.Set[route]
}

func NewTable(c Class) *Table {
	enabled := mapset.NewThreadUnsafeSet[route]()
	for _, p := range Pairs(c) {
		enabled.Add(route{p.Source, p.Dest})
	}
	return &Table{class: c, enabled: enabled}
}

func (t *Table) Class() Class {
	return t.class
}

func (t *Table) Enabled(source, dest Kind) bool {
	return t.enabled.Contains(route{source, dest})
}

func (t *Table) Size() int {
	return t.enabled.Cardinality()
}

// Enabled reports whether c registers the source to dest conversion.
func Enabled(c Class, source, dest Kind) bool {
	return NewTable(c).Enabled(source, dest)
}
