package decimal_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/alanube-ecf/internal/decimal"
)

func TestFromInt(t *testing.T) {
	d := decimal.FromInt(1000)
	assert.True(t, d.Equal(dec.NewFromInt(1000)))
}

func TestFromString(t *testing.T) {
	d, err := decimal.FromString(" 123456.78 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = decimal.FromString("not-a-number")
	require.Error(t, err)
}

func TestMustFromString(t *testing.T) {
	d := decimal.MustFromString("999.99")
	assert.True(t, d.Equal(dec.RequireFromString("999.99")))

	assert.Panics(t, func() {
		decimal.MustFromString("invalid")
	})
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		in       string
		places   int32
		expected string
	}{
		{"10.125", 2, "10.12"},
		{"10.135", 2, "10.14"},
		{"10.1", 2, "10.1"},
		{"1.23456", 4, "1.2346"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := decimal.RoundTo(dec.RequireFromString(tt.in), tt.places)
			assert.True(t, got.Equal(dec.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}

func TestMaxForDigits(t *testing.T) {
	tests := []struct {
		digits, places int32
		expected       string
	}{
		{16, 2, "99999999999999.99"},
		{20, 4, "9999999999999999.9999"},
		{19, 3, "9999999999999999.999"},
		{5, 2, "999.99"},
		{6, 4, "99.9999"},
		{3, 0, "999"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := decimal.MaxForDigits(tt.digits, tt.places)
			assert.Equal(t, tt.expected, got.StringFixed(tt.places))
		})
	}
}

func TestWithinMargin(t *testing.T) {
	a := dec.RequireFromString("1000.00")

	assert.True(t, decimal.Reconciles(a, dec.RequireFromString("1001.00")))
	assert.True(t, decimal.Reconciles(a, dec.RequireFromString("999.00")))
	assert.False(t, decimal.Reconciles(a, dec.RequireFromString("1001.01")))
	assert.False(t, decimal.WithinMargin(a, dec.RequireFromString("1000.50"), dec.RequireFromString("0.1")))
}

func TestLineAmount(t *testing.T) {
	got := decimal.LineAmount(
		dec.RequireFromString("100.50"),
		dec.NewFromInt(3),
		dec.RequireFromString("1.50"),
		dec.RequireFromString("0.25"),
	)
	assert.True(t, got.Equal(dec.RequireFromString("300.25")), "got %s", got)
}

func TestPercentage(t *testing.T) {
	got := decimal.Percentage(dec.NewFromInt(1000), dec.NewFromInt(18))
	assert.True(t, got.Equal(dec.NewFromInt(180)))
}

func TestFloat(t *testing.T) {
	assert.Equal(t, 10.13, decimal.Float(dec.RequireFromString("10.125001"), 2))
	assert.Equal(t, 10.0, decimal.Float(dec.NewFromInt(10), 2))
}

func TestSum(t *testing.T) {
	values := []dec.Decimal{
		dec.NewFromInt(100),
		dec.NewFromInt(200),
		dec.NewFromInt(300),
	}
	assert.True(t, decimal.Sum(values).Equal(dec.NewFromInt(600)))
	assert.True(t, decimal.Sum(nil).IsZero())
}

func TestIsPositive(t *testing.T) {
	assert.True(t, decimal.IsPositive(dec.NewFromInt(1)))
	assert.False(t, decimal.IsPositive(dec.Zero))
	assert.False(t, decimal.IsPositive(dec.NewFromInt(-1)))
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, decimal.IsNonNegative(dec.NewFromInt(1)))
	assert.True(t, decimal.IsNonNegative(dec.Zero))
	assert.False(t, decimal.IsNonNegative(dec.NewFromInt(-1)))
}
