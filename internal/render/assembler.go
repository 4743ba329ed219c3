package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"invoicepress/internal/models"
)

// ImageSource loads raw image bytes for a reference (logo or photo).
// Load failures are recoverable: the renderer skips the image and
// continues with the rest of the document.
type ImageSource interface {
	Load(ref string) ([]byte, error)
}

// Document is the finished, immutable output of one assembly: the PDF
// bytes for an ordered sequence of fixed-size pages plus the derived
// suggested file name.
type Document struct {
	FileName  string
	PageCount int

	data []byte
}

// Bytes returns the rendered PDF bytes.
func (d *Document) Bytes() []byte {
	return d.data
}

// Assembler drives the section renderers in fixed order against one
// PageFlow instance per document. An Assembler holds no per-document
// state and is safe for concurrent use; each Assemble call builds its
// own surface and flow.
type Assembler struct {
	cfg    Config
	images ImageSource
	money  *CurrencyFormatter
}

// NewAssembler creates an assembler. images may be nil when the caller
// never supplies logo or photo references.
func NewAssembler(images ImageSource, cfg Config) *Assembler {
	return &Assembler{
		cfg:    cfg,
		images: images,
		money:  NewCurrencyFormatter(),
	}
}

// Assemble renders one snapshot into a finished document. Section order
// is fixed: header, party information, metadata, line-item table,
// totals, custom fields, photo appendix, footer. Missing optional data
// renders nothing rather than failing; only surface/output errors are
// returned.
func (a *Assembler) Assemble(snap models.InvoiceSnapshot, tmpl *models.TemplateSnapshot, fields []models.CustomField) (*Document, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s %s", snap.DocumentType, snap.Number), true)
	pdf.SetCreationDate(creationDate(snap))
	pdf.SetCatalogSort(true)

	style := ResolveStyle(tmpl)
	flow := newPageFlow(pdf, a.cfg.Geometry)

	r := &docRenderer{
		pdf:    pdf,
		flow:   flow,
		style:  style,
		snap:   snap,
		money:  a.money,
		images: a.images,
		cfg:    a.cfg,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}

	r.renderHeader()
	r.renderPartyInfo()
	r.renderMetadata()
	if !style.HideLineItems {
		r.renderLineItemTable()
	}
	r.renderTotals()
	r.renderCustomFields(fields)
	r.renderPhotoAppendix()
	if !style.HidePaymentTerms {
		r.renderFooter()
	}

	if pdf.Err() {
		return nil, fmt.Errorf("assemble document: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write document output: %w", err)
	}

	return &Document{
		FileName:  SuggestedFileName(snap),
		PageCount: flow.finalize(),
		data:      buf.Bytes(),
	}, nil
}

// creationDate pins the PDF creation date to the snapshot so identical
// inputs produce bit-for-bit identical output.
func creationDate(snap models.InvoiceSnapshot) time.Time {
	if snap.IssueDate.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return snap.IssueDate.UTC()
}

// docRenderer carries the per-document state shared by all section
// renderers: the surface, the page flow, the resolved style and the
// snapshot being rendered.
type docRenderer struct {
	pdf    *gofpdf.Fpdf
	flow   *PageFlow
	style  ResolvedStyle
	snap   models.InvoiceSnapshot
	money  *CurrencyFormatter
	images ImageSource
	cfg    Config
	tr     func(string) string

	imageSeq int
}

var namePartPattern = regexp.MustCompile(`[^A-Za-z0-9-]+`)

// SuggestedFileName derives the deterministic output name
// {DocumentType}_{CustomerName}_{DocumentNumber}.pdf.
func SuggestedFileName(snap models.InvoiceSnapshot) string {
	return fmt.Sprintf("%s_%s_%s.pdf",
		snap.DocumentType,
		sanitizeNamePart(snap.CustomerName),
		sanitizeNamePart(snap.Number))
}

// VersionedFileName inserts a _v{N} suffix before the extension, used
// when a name collision must not overwrite an existing document.
func VersionedFileName(base string, version int) string {
	ext := ".pdf"
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_v%d%s", stem, version, ext)
}

func sanitizeNamePart(s string) string {
	s = namePartPattern.ReplaceAllString(strings.TrimSpace(s), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "unnamed"
	}
	return s
}
