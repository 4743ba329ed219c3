package render

import (
	"fmt"
	"strconv"
	"strings"

	"invoicepress/internal/models"
)

// RGB is a color in 0-255 channel values, the form gofpdf consumes.
type RGB struct {
	R, G, B int
}

// ResolvedStyle is the fully-populated visual style for one document,
// produced once per assembly and threaded through every section.
type ResolvedStyle struct {
	Primary   RGB
	Secondary RGB

	// FontFamily is a gofpdf core family: "Arial" (sans) or "Times" (serif).
	FontFamily string

	HideLineItems    bool
	HidePaymentTerms bool
	HasBranding      bool

	CompanyName  string
	LogoRef      string
	PaymentTerms string
}

var (
	defaultPrimary   = RGB{R: 33, G: 37, B: 41}
	defaultSecondary = RGB{R: 108, G: 117, B: 125}
)

// ResolveStyle resolves the effective style from an optional template.
// It is a pure function: no document state is touched. Malformed fields
// degrade to their defaults individually; a single bad color never
// fails the whole resolution.
func ResolveStyle(t *models.TemplateSnapshot) ResolvedStyle {
	style := ResolvedStyle{
		Primary:    defaultPrimary,
		Secondary:  defaultSecondary,
		FontFamily: "Arial",
	}
	if t == nil {
		return style
	}

	if c, err := parseHexColor(t.PrimaryColor); err == nil {
		style.Primary = c
	}
	if c, err := parseHexColor(t.SecondaryColor); err == nil {
		style.Secondary = c
	}
	if strings.EqualFold(t.FontFamily, "serif") {
		style.FontFamily = "Times"
	}

	style.HideLineItems = t.HideLineItems
	style.HidePaymentTerms = t.HidePaymentTerms
	style.CompanyName = t.CompanyName
	style.LogoRef = t.LogoRef
	style.PaymentTerms = t.PaymentTerms
	style.HasBranding = t.CompanyName != "" || t.LogoRef != ""

	return style
}

// parseHexColor accepts "#RRGGBB" or "RRGGBB" (and the short "#RGB" form).
func parseHexColor(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("invalid hex color length %d", len(s))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, nil
}
