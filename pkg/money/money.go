// Package money converts between the dollar strings the program shows the
// user and the integer cents the store persists.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDollars converts a decimal dollar amount, optionally prefixed with a
// currency symbol, into integer cents. Fractions of a cent round half away
// from zero, so "19.995" becomes 2000.
func ParseDollars(raw string) (int64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	if cleaned == "" {
		return 0, fmt.Errorf("empty price")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", raw, err)
	}
	return amount.Shift(2).Round(0).IntPart(), nil
}

// FormatCents renders integer cents as a dollar string: 1999 -> "$19.99".
func FormatCents(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}
