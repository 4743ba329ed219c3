package models

// TemplateSnapshot carries the user-configurable styling captured at
// generation time. Every field is optional; absent or malformed fields
// fall back to fixed defaults during style resolution.
type TemplateSnapshot struct {
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	FontFamily     string `json:"font_family,omitempty"` // "sans" or "serif"

	CompanyName string `json:"company_name,omitempty"`
	LogoRef     string `json:"logo_ref,omitempty"`

	HideLineItems    bool `json:"hide_line_items,omitempty"`
	HidePaymentTerms bool `json:"hide_payment_terms,omitempty"`

	PaymentTerms string `json:"payment_terms,omitempty"`
}

// CustomFieldType tags how a custom field value is formatted.
type CustomFieldType string

const (
	CustomFieldText   CustomFieldType = "text"
	CustomFieldNumber CustomFieldType = "number"
	CustomFieldDate   CustomFieldType = "date"
)

// CustomField is one (label, type, value) triple rendered in the
// custom-fields section. Fields with empty values are skipped.
type CustomField struct {
	Label string          `json:"label"`
	Type  CustomFieldType `json:"type"`
	Value string          `json:"value"`
}
