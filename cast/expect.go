package cast

import (
	"github.com/jfrog/convi/safeconvert"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const InvariantMessage = "data conversion invariant"

// ErrInvariant is wrapped by the value ExpectFrom panics with.
var ErrInvariant = errors.New(InvariantMessage)

// ExpectFrom converts v to D and panics when v is out of D's range.
// Use safeconvert.Convert to handle the failure instead.
func ExpectFrom[D, S constraints.Integer](v S) D {
	d, err := safeconvert.Convert[D](v)
	if err != nil {
		panic(&invariantError{cause: err})
	}
	return d
}

// ExpectInto stores ExpectFrom(v) into dst.
func ExpectInto[D, S constraints.Integer](dst *D, v S) {
	*dst = ExpectFrom[D](v)
}

type invariantError struct {
	cause error
}

func (e *invariantError) Error() string {
	return InvariantMessage + ": " + e.cause.Error()
}

func (e *invariantError) Is(target error) bool {
	return target == ErrInvariant
}

func (e *invariantError) Unwrap() error {
	return e.cause
}
