package render

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyFormatter renders monetary amounts deterministically: two
// decimal places, digit grouping, and symbol placement from a fixed
// lookup table. It is the single place where monetary rounding happens;
// every other component passes already-rounded decimals through it.
type CurrencyFormatter struct {
	symbols map[string]currencySymbol
}

type currencySymbol struct {
	text   string
	suffix bool
}

// fallbackSymbol is used for currency codes outside the lookup table.
const fallbackSymbol = "¤"

// NewCurrencyFormatter builds a formatter with the built-in symbol table.
func NewCurrencyFormatter() *CurrencyFormatter {
	return &CurrencyFormatter{
		symbols: map[string]currencySymbol{
			"USD": {text: "$"},
			"AUD": {text: "$"},
			"CAD": {text: "$"},
			"NZD": {text: "$"},
			"SGD": {text: "$"},
			"EUR": {text: "€"},
			"GBP": {text: "£"},
			"JPY": {text: "¥"},
			"INR": {text: "Rs."},
			"CHF": {text: "CHF "},
			"ZAR": {text: "R"},
			"SEK": {text: " kr", suffix: true},
			"NOK": {text: " kr", suffix: true},
			"DKK": {text: " kr", suffix: true},
		},
	}
}

// Format renders amount in the given currency. Unknown codes fall back
// to a generic symbol; this method never fails.
func (f *CurrencyFormatter) Format(amount decimal.Decimal, code string) string {
	sym, ok := f.symbols[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		sym = currencySymbol{text: fallbackSymbol}
	}
	n := f.FormatNumber(amount)
	if sym.suffix {
		return n + sym.text
	}
	return sym.text + n
}

// FormatNumber renders amount with two decimals and grouping, no symbol.
func (f *CurrencyFormatter) FormatNumber(amount decimal.Decimal) string {
	fixed := amount.Round(2).StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	out := groupDigits(parts[0]) + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

// groupDigits inserts thousands separators into a plain digit string.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
