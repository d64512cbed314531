package reference

import (
	"strings"
	"testing"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrderID(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-1111-2222-3333-444444444444")

	code := FromOrderID(id)

	assert.Equal(t, "A1B2C3D4", code)
	assert.True(t, strings.HasPrefix(id.String(), strings.ToLower(code)))
}

func TestNormalize_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "a1b2c3d4", expected: "a1b2c3d4"},
		{name: "uppercase", input: "A1B2C3D4", expected: "a1b2c3d4"},
		{name: "mixed case", input: "A1b2C3d4", expected: "a1b2c3d4"},
		{name: "surrounding whitespace", input: "  a1b2c3d4 ", expected: "a1b2c3d4"},
		{name: "all digits", input: "01234567", expected: "01234567"},
		{name: "all letters", input: "abcdefab", expected: "abcdefab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too short", input: "a1b2c3"},
		{name: "too long", input: "a1b2c3d4e5"},
		{name: "non-hex letter", input: "a1b2c3g4"},
		{name: "punctuation", input: "a1b2-c3d"},
		{name: "full uuid", input: "a1b2c3d4-1111-2222-3333-444444444444"},
		{name: "unicode", input: "a1b2c3dé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			require.Error(t, err)
			assert.Equal(t, model.ErrInvalidReference, err)
		})
	}
}

func TestBounds(t *testing.T) {
	lo, hi, err := Bounds("a1b2c3d4")
	require.NoError(t, err)

	assert.Equal(t, "a1b2c3d4-0000-0000-0000-000000000000", lo.String())
	assert.Equal(t, "a1b2c3d4-ffff-ffff-ffff-ffffffffffff", hi.String())
}

func TestBounds_EncloseDerivedOrders(t *testing.T) {
	// Any order whose key starts with the code must fall inside the range.
	for i := 0; i < 100; i++ {
		id := uuid.New()
		code, err := Normalize(FromOrderID(id))
		require.NoError(t, err)

		lo, hi, err := Bounds(code)
		require.NoError(t, err)

		idStr := id.String()
		assert.LessOrEqual(t, lo.String(), idStr)
		assert.GreaterOrEqual(t, hi.String(), idStr)
	}
}
