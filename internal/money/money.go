// Package money converts between decimal currency amounts and int64 cents.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FromDecimal converts a currency amount to cents, rounding half away from zero.
func FromDecimal(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}

// ToDecimal converts cents back to a currency amount.
func ToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Parse reads amounts such as "15", "3.75" or "3,75".
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return FromDecimal(d), nil
}

// Format renders cents with two decimals, e.g. 1234 -> "12.34".
func Format(cents int64) string {
	return ToDecimal(cents).StringFixed(2)
}

// Ratio returns amount*num/den rounded to the cent.
func Ratio(amount int64, num, den int) int64 {
	if den == 0 {
		return 0
	}

	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(int64(num))).
		Div(decimal.NewFromInt(int64(den))).
		Round(0).
		IntPart()
}

// MulUnits multiplies a per-unit price in cents by a unit count.
func MulUnits(price int64, units int) int64 {
	return price * int64(units)
}
