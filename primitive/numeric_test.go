package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"array-subset/primitive"
)

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"-1", true},
		{"+1.5", true},
		{".5", true},
		{"5.", true},
		{"1e3", true},
		{"1E-3", true},
		{" 1 ", true},
		{"\t42\n", true},

		{"", false},
		{".", false},
		{"1e", false},
		{"abc", false},
		{"1abc", false},
		{"0x1A", false},
		{"1_000", false},
		{"NaN", false},
		{"1e99999", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, primitive.IsNumeric(tt.input))
		})
	}
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	d, ok := primitive.Decimal(float32(0.1))
	require.True(t, ok)
	assert.Equal(t, "0.1", d.String())

	d, ok = primitive.Decimal(uint64(18446744073709551615))
	require.True(t, ok)
	assert.Equal(t, "18446744073709551615", d.String())

	d, ok = primitive.Decimal("  -2.50 ")
	require.True(t, ok)
	assert.Equal(t, "-2.5", d.String())

	_, ok = primitive.Decimal(nil)
	assert.False(t, ok)

	_, ok = primitive.Decimal(struct{}{})
	assert.False(t, ok)
}

func TestNumericEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.NumericEqual(int8(-3), "-3.000"))
	assert.True(t, primitive.NumericEqual(uint64(1<<63), "9223372036854775808"))
	assert.False(t, primitive.NumericEqual(1, 1.5))
	assert.False(t, primitive.NumericEqual("a", "a"))
}

func TestBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, primitive.KindInt8.Bits())
	assert.Equal(t, 32, primitive.KindFloat32.Bits())
	assert.Equal(t, 64, primitive.KindFloat64.Bits())
	assert.PanicsWithValue(t, "only numeric kinds have a meaningful bit size, but requested for: KindString", func() {
		primitive.KindString.Bits()
	})
}
