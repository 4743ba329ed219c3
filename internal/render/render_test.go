package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"invoicepress/internal/models"
)

// mapImageSource serves image bytes from memory; missing refs fail.
type mapImageSource map[string][]byte

func (m mapImageSource) Load(ref string) ([]byte, error) {
	data, ok := m[ref]
	if !ok {
		return nil, fmt.Errorf("no such image %q", ref)
	}
	return data, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func newTestRenderer(t *testing.T, snap models.InvoiceSnapshot, tmpl *models.TemplateSnapshot, images ImageSource) *docRenderer {
	t.Helper()
	pdf := gofpdf.New("P", "pt", "A4", "")
	flow := newPageFlow(pdf, A4Geometry())
	return &docRenderer{
		pdf:    pdf,
		flow:   flow,
		style:  ResolveStyle(tmpl),
		snap:   snap,
		money:  NewCurrencyFormatter(),
		images: images,
		cfg:    DefaultConfig(),
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testSnapshot() models.InvoiceSnapshot {
	return models.InvoiceSnapshot{
		ID:           uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		DocumentType: models.DocumentTypeInvoice,
		Number:       "INV-0042",

		CustomerName:    "Acme Pty Ltd",
		CustomerAddress: "12 Harbour St\nSydney NSW 2000",
		CustomerEmail:   "accounts@acme.example",

		BusinessName:           "Southbank Studio",
		BusinessRegistrationID: "ABN 51 824 753 556",
		BusinessEmail:          "hello@southbank.example",
		BusinessPhone:          "+61 2 5550 1234",
		BusinessAddress:        "90 Collins St, Melbourne VIC 3000",

		IssueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),

		Items: []models.LineItemSnapshot{
			{Description: "Design consultation", Quantity: dec("2"), UnitPrice: dec("150.25")},
			{Description: "Print production", Quantity: dec("1.5"), UnitPrice: dec("80")},
		},

		Subtotal:  dec("420.50"),
		TaxRate:   dec("10"),
		TaxAmount: dec("42.05"),
		Total:     dec("462.55"),

		CurrencyCode: "AUD",
	}
}
