package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PageFlow owns the draw cursor for one document assembly: the current
// page index and the vertical offset on that page. It is the single
// authority for deciding when content continues onto a new page.
//
// A PageFlow is created per assembly and must never be shared across
// concurrent assemblies; its cursor state is not safe for concurrent use.
type PageFlow struct {
	pdf  *gofpdf.Fpdf
	geom PageGeometry
	page int
}

func newPageFlow(pdf *gofpdf.Fpdf, geom PageGeometry) *PageFlow {
	pdf.SetMargins(geom.MarginLeft, geom.MarginTop, geom.MarginRight)
	pdf.SetAutoPageBreak(false, geom.MarginBottom)
	pdf.AddPage()
	pdf.SetXY(geom.MarginLeft, geom.MarginTop)
	return &PageFlow{pdf: pdf, geom: geom, page: 1}
}

// EnsureSpace guarantees that height points of vertical space are
// available before drawing. If the current page cannot fit them, the
// page is finalized and the cursor moves to the top of a fresh page.
// A block taller than one printable page is clamped so rendering still
// progresses with a single forced break rather than looping.
//
// A negative height is a programming error, not bad input, and panics.
func (p *PageFlow) EnsureSpace(height float64) {
	if height < 0 {
		panic(fmt.Sprintf("render: negative height %f passed to EnsureSpace", height))
	}
	if height > p.geom.PrintableHeight() {
		height = p.geom.PrintableHeight()
	}
	if p.Y()+height > p.geom.PrintableBottom() {
		p.newPage()
	}
}

// Advance moves the cursor down without a bound check. Callers use it
// after they have already ensured space for what they drew.
func (p *PageFlow) Advance(height float64) {
	if height < 0 {
		panic(fmt.Sprintf("render: negative height %f passed to Advance", height))
	}
	p.pdf.SetY(p.Y() + height)
}

// Y reports the current vertical cursor position on the active page.
func (p *PageFlow) Y() float64 {
	return p.pdf.GetY()
}

// Page reports the 1-based index of the active page.
func (p *PageFlow) Page() int {
	return p.page
}

// Surface exposes the active drawing surface for section renderers.
func (p *PageFlow) Surface() *gofpdf.Fpdf {
	return p.pdf
}

// Geometry returns the fixed page geometry of this flow.
func (p *PageFlow) Geometry() PageGeometry {
	return p.geom
}

// WrapText breaks text into lines fitting the given width using the
// metrics of the currently selected font.
func (p *PageFlow) WrapText(text string, width float64) []string {
	if text == "" {
		return []string{""}
	}
	lines := p.pdf.SplitText(text, width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func (p *PageFlow) newPage() {
	p.pdf.AddPage()
	p.pdf.SetXY(p.geom.MarginLeft, p.geom.MarginTop)
	p.page++
}

// finalize closes the document flow and reports the finished page count.
func (p *PageFlow) finalize() int {
	return p.page
}
