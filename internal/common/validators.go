package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	hexColorPattern     = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidateCurrencyCode checks an ISO-4217 style three-letter code.
func ValidateCurrencyCode(code string, fieldName string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if !currencyCodePattern.MatchString(code) {
		return fmt.Errorf("%s must be a three-letter uppercase currency code", fieldName)
	}
	return nil
}

// ValidateHexColor checks a #RRGGBB (or short #RGB) color string.
func ValidateHexColor(color string, fieldName string) error {
	if !hexColorPattern.MatchString(strings.TrimSpace(color)) {
		return fmt.Errorf("%s must be a hex color like #1A2B3C", fieldName)
	}
	return nil
}

// ValidateNonNegativeDecimal rejects negative monetary values.
func ValidateNonNegativeDecimal(value decimal.Decimal, fieldName string) error {
	if value.IsNegative() {
		return fmt.Errorf("%s cannot be negative", fieldName)
	}
	return nil
}

// SafeString dereferences an optional string.
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
