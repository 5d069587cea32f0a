package gen

import (
	"strings"
	"text/template"
)

const header = "// Code generated by convigen. DO NOT EDIT.\n"

var funcs = template.FuncMap{
	"union": func(types []string) string {
		terms := make([]string, len(types))
		for i, t := range types {
			terms[i] = "~" + t
		}
		return strings.Join(terms, " | ")
	},
}

var classTemplate = template.Must(template.New("class").Funcs(funcs).Parse(header + `
//go:build {{.Constraint}}

package {{.Package}}

// MinPointerWidth is the pointer width, in bits, every target of this build
// is assumed to provide.
const MinPointerWidth = {{.Bits}}

// UintSource is satisfied by the integer types that UintFrom and UintptrFrom
// accept when targets provide at least {{.Bits}}-bit pointers.
type UintSource interface {
	{{union .UintSources}}
}

// IntSource is satisfied by the integer types that IntFrom accepts when
// targets provide at least {{.Bits}}-bit pointers.
type IntSource interface {
	{{union .IntSources}}
}
{{range .Methods}}
func (v {{.Wrapper}}) {{.Method}}() {{.GoType}} {
	return {{.From}}(v)
}
{{end}}`))

var guardTemplate = template.Must(template.New("guard").Parse(header + `
//go:build {{.Constraint}}

package {{.Package}}

const pointerBits = 32 << (^uintptr(0) >> 63)

// {{.Guard}} is negative, and the array length below invalid, on targets
// whose pointers are narrower than {{.Bits}} bits.
const {{.Guard}} = pointerBits - {{.Bits}}

var _ [{{.Guard}}]struct{}
`))
