package form_test

import (
	"testing"
	"time"

	"github.com/andyle182810/cinemadash/form"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{name: "valid", input: "42", want: ptr(42)},
		{name: "padded", input: "  7 ", want: ptr(7)},
		{name: "empty", input: "", want: nil},
		{name: "blank", input: "   ", want: nil},
		{name: "garbage", input: "abc", want: nil},
		{name: "float", input: "1.5", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, form.Int(tt.input))
		})
	}
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	valid := form.Decimal("1500000000.50")
	require.True(t, valid.Valid)
	require.Equal(t, "1500000000.5", valid.Decimal.String())

	require.False(t, form.Decimal("").Valid)
	require.False(t, form.Decimal("NaN").Valid)
	require.False(t, form.Decimal("12abc").Valid)
}

func TestFloat_RejectsNaNAndInfinity(t *testing.T) {
	t.Parallel()

	require.Nil(t, form.Float("NaN"))
	require.Nil(t, form.Float("Inf"))
	require.Nil(t, form.Float("x"))

	value := form.Float("8.4")
	require.NotNil(t, value)
	require.InDelta(t, 8.4, *value, 1e-9)
}

func TestDate(t *testing.T) {
	t.Parallel()

	value := form.Date("2023-09-07")
	require.NotNil(t, value)
	require.Equal(t, time.Date(2023, time.September, 7, 0, 0, 0, 0, time.UTC), *value)

	require.Nil(t, form.Date("07/09/2023"))
	require.Nil(t, form.Date(""))
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Nil(t, form.String("  "))
	require.Equal(t, "Jawan", *form.String(" Jawan "))
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "UA", *form.OneOf("UA", "U", "UA", "A", "S"))
	require.Nil(t, form.OneOf("PG", "U", "UA", "A", "S"))
	require.Nil(t, form.OneOf("", "U"))
}

func TestRequireInt64(t *testing.T) {
	t.Parallel()

	value, err := form.RequireInt64("movieId", "12")
	require.NoError(t, err)
	require.Equal(t, int64(12), value)

	_, err = form.RequireInt64("movieId", "twelve")
	require.ErrorIs(t, err, form.ErrInvalidValue)
}

func ptr[T any](v T) *T {
	return &v
}
