package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// DefaultMargin is the whole-unit tolerance used when reconciling amounts
var DefaultMargin = decimal.NewFromInt(1)

var hundred = decimal.NewFromInt(100)

// FromInt creates decimal from int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// RoundTo rounds half to even at the given number of places.
func RoundTo(d decimal.Decimal, places int32) decimal.Decimal {
	return d.RoundBank(places)
}

// MaxForDigits returns the largest value that fits maxDigits total digits
// with places of them after the point, e.g. (16, 2) -> 99999999999999.99.
func MaxForDigits(maxDigits, places int32) decimal.Decimal {
	whole := maxDigits - places
	if whole < 0 {
		whole = 0
	}
	s := strings.Repeat("9", int(whole))
	if s == "" {
		s = "0"
	}
	if places > 0 {
		s += "." + strings.Repeat("9", int(places))
	}
	return decimal.RequireFromString(s)
}

// WithinMargin reports whether |a-b| <= margin
func WithinMargin(a, b, margin decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(margin)
}

// Reconciles compares a and b with DefaultMargin
func Reconciles(a, b decimal.Decimal) bool {
	return WithinMargin(a, b, DefaultMargin)
}

// LineAmount computes: price * quantity - discount + surcharge
func LineAmount(price, quantity, discount, surcharge decimal.Decimal) decimal.Decimal {
	return price.Mul(quantity).Sub(discount).Add(surcharge)
}

// Percentage computes: amount * (rate/100), rounded to 2 places
func Percentage(amount decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred).RoundBank(2)
}

// Float converts to float64 after rounding to places
func Float(d decimal.Decimal, places int32) float64 {
	f, _ := d.RoundBank(places).Float64()
	return f
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsPositive returns true if decimal is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
