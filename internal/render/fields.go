package render

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"invoicepress/internal/models"
)

var customDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
	"02-01-2006",
}

// renderCustomFields draws one "label: value" line per non-empty field.
// Values are formatted per their declared type; a value that cannot be
// parsed falls back to the raw string rather than aborting the section.
func (r *docRenderer) renderCustomFields(fields []models.CustomField) {
	var present []models.CustomField
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return
	}

	geom := r.flow.Geometry()
	usable := geom.UsableWidth()

	r.pdf.SetFont(r.style.FontFamily, "B", smallFontSz)
	r.writeHeading("Additional Details")

	r.pdf.SetFont(r.style.FontFamily, "", smallFontSz)
	r.setTextColor(r.style.Primary)
	for _, f := range present {
		line := f.Label + ": " + formatCustomFieldValue(f)
		r.flow.EnsureSpace(smallLineH)
		r.pdf.SetXY(geom.MarginLeft, r.flow.Y())
		r.pdf.CellFormat(usable, smallLineH, r.tr(line), "", 0, "L", false, 0, "")
		r.flow.Advance(smallLineH)
	}

	r.flow.Advance(sectionGap - smallLineH)
}

// formatCustomFieldValue applies the per-type formatting rule: text
// passes through, numbers gain grouping separators, dates are reshaped
// to the display pattern. Any parse failure returns the raw value.
func formatCustomFieldValue(f models.CustomField) string {
	switch f.Type {
	case models.CustomFieldNumber:
		return formatGroupedNumber(f.Value)
	case models.CustomFieldDate:
		for _, layout := range customDateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(f.Value)); err == nil {
				return t.Format(displayDateLayout)
			}
		}
		return f.Value
	default:
		return f.Value
	}
}

func formatGroupedNumber(raw string) string {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""))
	if err != nil {
		return raw
	}
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := groupDigits(intPart)
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		return "-" + out
	}
	return out
}
