package widthclass

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Class is a declared minimum target pointer width.
type Class int

const (
	Base Class = iota
	Min16
	Min32
	Min64
	Min128
)

const tagPrefix = "convi_min"

var classBits = map[Class]int{
	Base:   8,
	Min16:  16,
	Min32:  32,
	Min64:  64,
	Min128: 128,
}

// Classes returns every class, narrowest first.
func Classes() []Class {
	return []Class{Base, Min16, Min32, Min64, Min128}
}

func (c Class) Valid() bool {
	_, ok := classBits[c]
	return ok
}

// Bits returns the pointer width guaranteed by the class.
func (c Class) Bits() int {
	return classBits[c]
}

// Tag returns the build tag selecting the class. Base has no tag.
func (c Class) Tag() string {
	if c == Base {
		return ""
	}
	return tagPrefix + strconv.Itoa(c.Bits())
}

func (c Class) String() string {
	if c == Base {
		return "base"
	}
	return c.Tag()
}

// Constraint returns the build constraint expression under which c is the
// active class: its own tag is set and no wider tag is.
func (c Class) Constraint() string {
	var terms []string
	if c != Base {
		terms = append(terms, c.Tag())
	}
	wider := lo.Filter(Classes(), func(other Class, _ int) bool { return other > c })
	for _, other := range wider {
		terms = append(terms, "!"+other.Tag())
	}
	return strings.Join(terms, " && ")
}

// Satisfied reports whether a target with the given pointer width meets the
// class requirement.
func (c Class) Satisfied(pointerBits int) bool {
	return pointerBits >= c.Bits()
}

// ParseClass accepts a class name ("base", "convi_min32") or a bit count ("32").
func ParseClass(s string) (Class, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), tagPrefix)
	if s == "base" || s == "" {
		return Base, nil
	}
	bits, err := strconv.Atoi(s)
	if err != nil {
		return Base, errors.Wrapf(err, "invalid width class %q", s)
	}
	for _, c := range Classes() {
		if c.Bits() == bits {
			return c, nil
		}
	}
	return Base, errors.Errorf("unsupported minimum pointer width: %d", bits)
}

// ForPointerWidth returns the widest class satisfied by the given pointer width.
func ForPointerWidth(pointerBits int) Class {
	satisfied := lo.Filter(Classes(), func(c Class, _ int) bool { return c.Satisfied(pointerBits) })
	if len(satisfied) == 0 {
		return Base
	}
	return lo.Max(satisfied)
}
