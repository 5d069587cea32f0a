package widthclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassTags(t *testing.T) {
	assert.Equal(t, "", Base.Tag())
	assert.Equal(t, "convi_min16", Min16.Tag())
	assert.Equal(t, "convi_min128", Min128.Tag())
	assert.Equal(t, "base", Base.String())
	assert.Equal(t, "convi_min64", Min64.String())
}

func TestClassConstraint(t *testing.T) {
	tests := []struct {
		class    Class
		expected string
	}{
		{Base, "!convi_min16 && !convi_min32 && !convi_min64 && !convi_min128"},
		{Min16, "convi_min16 && !convi_min32 && !convi_min64 && !convi_min128"},
		{Min32, "convi_min32 && !convi_min64 && !convi_min128"},
		{Min64, "convi_min64 && !convi_min128"},
		{Min128, "convi_min128"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.class.Constraint(), "Constraint of %s", test.class)
	}
}

func TestClassValid(t *testing.T) {
	for _, class := range Classes() {
		assert.True(t, class.Valid(), class.String())
	}
	assert.False(t, Class(-1).Valid())
	assert.False(t, Class(5).Valid())
}

func TestClassSatisfied(t *testing.T) {
	assert.True(t, Min32.Satisfied(64))
	assert.True(t, Min64.Satisfied(64))
	assert.False(t, Min64.Satisfied(32))
	assert.False(t, Min128.Satisfied(64))
	assert.True(t, Base.Satisfied(8))
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		input       string
		expected    Class
		errExpected bool
	}{
		{"base", Base, false},
		{"", Base, false},
		{"16", Min16, false},
		{"convi_min32", Min32, false},
		{" 64 ", Min64, false},
		{"128", Min128, false},
		{"8", Base, false},
		{"24", Base, true},
		{"wide", Base, true},
	}

	for _, test := range tests {
		result, err := ParseClass(test.input)
		if test.errExpected {
			assert.Error(t, err, "Expected an error for input: %q", test.input)
		} else {
			require.NoError(t, err, "Did not expect an error for input: %q", test.input)
			assert.Equal(t, test.expected, result)
		}
	}
}

func TestForPointerWidth(t *testing.T) {
	assert.Equal(t, Min64, ForPointerWidth(64))
	assert.Equal(t, Min32, ForPointerWidth(32))
	assert.Equal(t, Min16, ForPointerWidth(16))
	assert.Equal(t, Base, ForPointerWidth(8))
	assert.Equal(t, Base, ForPointerWidth(4))
}
