package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicepress/internal/models"
)

func TestFormatCustomFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		field models.CustomField
		want  string
	}{
		{"text passthrough", models.CustomField{Type: models.CustomFieldText, Value: "PO-7781"}, "PO-7781"},
		{"number grouping", models.CustomField{Type: models.CustomFieldNumber, Value: "1234567.5"}, "1,234,567.5"},
		{"number with separators in input", models.CustomField{Type: models.CustomFieldNumber, Value: "1,234"}, "1,234"},
		{"negative number", models.CustomField{Type: models.CustomFieldNumber, Value: "-98765"}, "-98,765"},
		{"unparsable number falls back", models.CustomField{Type: models.CustomFieldNumber, Value: "twelve"}, "twelve"},
		{"iso date", models.CustomField{Type: models.CustomFieldDate, Value: "2025-03-09"}, "09 Mar 2025"},
		{"slash date", models.CustomField{Type: models.CustomFieldDate, Value: "09/03/2025"}, "09 Mar 2025"},
		{"unparsable date falls back", models.CustomField{Type: models.CustomFieldDate, Value: "sometime soon"}, "sometime soon"},
		{"unknown type treated as text", models.CustomField{Type: "mystery", Value: "raw"}, "raw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCustomFieldValue(tt.field))
		})
	}
}

func TestRenderCustomFieldsSkipsEmptyValues(t *testing.T) {
	fields := []models.CustomField{
		{Label: "PO Number", Type: models.CustomFieldText, Value: "PO-1"},
		{Label: "Reference", Type: models.CustomFieldText, Value: "   "},
		{Label: "Delivery", Type: models.CustomFieldDate, Value: "2025-01-15"},
	}

	withEmpty := newTestRenderer(t, testSnapshot(), nil, nil)
	start := withEmpty.flow.Y()
	withEmpty.renderCustomFields(fields)
	deltaWithEmpty := withEmpty.flow.Y() - start

	withoutEmpty := newTestRenderer(t, testSnapshot(), nil, nil)
	start = withoutEmpty.flow.Y()
	withoutEmpty.renderCustomFields([]models.CustomField{fields[0], fields[2]})
	deltaWithoutEmpty := withoutEmpty.flow.Y() - start

	// The empty field contributes no line.
	assert.InDelta(t, deltaWithoutEmpty, deltaWithEmpty, 0.01)
}

func TestRenderCustomFieldsNothingWhenAllEmpty(t *testing.T) {
	r := newTestRenderer(t, testSnapshot(), nil, nil)
	start := r.flow.Y()
	r.renderCustomFields([]models.CustomField{
		{Label: "A", Type: models.CustomFieldText, Value: ""},
	})
	assert.InDelta(t, start, r.flow.Y(), 0.01)
}
