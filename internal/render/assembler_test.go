package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicepress/internal/models"
)

func newTestAssembler(images ImageSource) *Assembler {
	return NewAssembler(images, DefaultConfig())
}

func TestAssembleProducesSinglePageDocument(t *testing.T) {
	doc, err := newTestAssembler(nil).Assemble(testSnapshot(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, doc.PageCount)
	assert.Equal(t, "Invoice_Acme_Pty_Ltd_INV-0042.pdf", doc.FileName)
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte("%PDF")))
}

func TestAssembleIsIdempotent(t *testing.T) {
	a := newTestAssembler(nil)
	snap := testSnapshot()
	tmpl := &models.TemplateSnapshot{PrimaryColor: "#004488", FontFamily: "serif"}
	fields := []models.CustomField{{Label: "PO", Type: models.CustomFieldText, Value: "PO-9"}}

	first, err := a.Assemble(snap, tmpl, fields)
	require.NoError(t, err)
	second, err := a.Assemble(snap, tmpl, fields)
	require.NoError(t, err)

	assert.Equal(t, first.PageCount, second.PageCount)
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()), "same input must produce bit-identical output")
}

func TestAssembleDoesNotMutateSnapshot(t *testing.T) {
	snap := testSnapshot()
	before, err := json.Marshal(snap)
	require.NoError(t, err)

	_, err = newTestAssembler(nil).Assemble(snap, nil, nil)
	require.NoError(t, err)

	after, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.NoError(t, snap.Validate())
}

func TestAssembleMalformedColorUsesDefaultPalette(t *testing.T) {
	a := newTestAssembler(nil)
	snap := testSnapshot()

	broken, err := a.Assemble(snap, &models.TemplateSnapshot{PrimaryColor: "##nothex"}, nil)
	require.NoError(t, err)
	plain, err := a.Assemble(snap, &models.TemplateSnapshot{}, nil)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(broken.Bytes(), plain.Bytes()),
		"a malformed color must degrade to the default palette, not change the output")
}

func TestAssembleLongTableSpansPages(t *testing.T) {
	snap := testSnapshot()
	snap.Items = nil
	subtotal := dec("0")
	for i := 0; i < 40; i++ {
		item := models.LineItemSnapshot{
			Description: strings.Repeat("wrapped description segment ", 5),
			Quantity:    dec("1"),
			UnitPrice:   dec("25.50"),
		}
		snap.Items = append(snap.Items, item)
		subtotal = subtotal.Add(item.Total())
	}
	snap.Subtotal = subtotal
	snap.TaxAmount = subtotal.Mul(dec("0.1")).Round(2)
	snap.Total = subtotal.Add(snap.TaxAmount)
	require.NoError(t, snap.Validate())

	doc, err := newTestAssembler(nil).Assemble(snap, nil, nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, doc.PageCount, 3)
}

func TestAssembleHiddenSectionsShrinkDocument(t *testing.T) {
	a := newTestAssembler(nil)
	snap := testSnapshot()

	full, err := a.Assemble(snap, nil, nil)
	require.NoError(t, err)
	hidden, err := a.Assemble(snap, &models.TemplateSnapshot{HideLineItems: true, HidePaymentTerms: true}, nil)
	require.NoError(t, err)

	assert.Less(t, len(hidden.Bytes()), len(full.Bytes()))
}

func TestAssembleSkipsUnresolvableImages(t *testing.T) {
	images := mapImageSource{"good.png": pngBytes(t, 100, 100)}
	a := newTestAssembler(images)

	withBad := testSnapshot()
	withBad.PhotoRefs = []string{"good.png", "missing.png"}
	onlyGood := testSnapshot()
	onlyGood.PhotoRefs = []string{"good.png"}

	docBad, err := a.Assemble(withBad, nil, nil)
	require.NoError(t, err)
	docGood, err := a.Assemble(onlyGood, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, docGood.PageCount, docBad.PageCount)
	assert.True(t, bytes.Equal(docGood.Bytes(), docBad.Bytes()),
		"a skipped image must not change the layout of the rest")
}

func TestAssembleMissingLogoIsNotFatal(t *testing.T) {
	snap := testSnapshot()
	snap.LogoRef = "logo-that-does-not-exist.png"

	doc, err := newTestAssembler(mapImageSource{}).Assemble(snap, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.PageCount)
}

func TestSuggestedFileName(t *testing.T) {
	snap := testSnapshot()
	assert.Equal(t, "Invoice_Acme_Pty_Ltd_INV-0042.pdf", SuggestedFileName(snap))

	snap.DocumentType = models.DocumentTypeQuote
	snap.CustomerName = "  Émile & Söhne GmbH  "
	snap.Number = "Q/2025/007"
	assert.Equal(t, "Quote_mile_S_hne_GmbH_Q_2025_007.pdf", SuggestedFileName(snap))

	snap.CustomerName = "???"
	assert.Equal(t, "Quote_unnamed_Q_2025_007.pdf", SuggestedFileName(snap))
}

func TestVersionedFileName(t *testing.T) {
	assert.Equal(t, "Invoice_Acme_1_v1.pdf", VersionedFileName("Invoice_Acme_1.pdf", 1))
	assert.Equal(t, "Invoice_Acme_1_v12.pdf", VersionedFileName("Invoice_Acme_1.pdf", 12))
}
