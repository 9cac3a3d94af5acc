// Package format renders transaction fields for display. Handlers attach
// these strings alongside the raw values so every client shows amounts and
// dates the same way.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "$",
	"AUD": "$",
	"JPY": "¥",
}

// Currency renders a signed amount with an explicit sign, the currency
// symbol and grouped thousands: "+$1,250.00", "-€89.99". Unknown currency
// codes fall back to the ISO code as a prefix.
func Currency(amount decimal.Decimal, currency string) string {
	sign := "+"
	if amount.IsNegative() {
		sign = "-"
	}

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	return sign + symbol + groupThousands(amount.Abs().StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string.
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")

	if len(intPart) <= 3 {
		if fracPart == "" {
			return intPart
		}
		return intPart + "." + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// Date renders a calendar date: "Aug 31, 2026".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DateTime renders a date with minute precision: "Aug 31, 2026 3:04 PM".
func DateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}
