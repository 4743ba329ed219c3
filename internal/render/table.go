package render

import (
	"fmt"
	"math"
)

const (
	tableFontSize = 9
	tableLineH    = 13
	cellPad       = 4
)

// column describes one line-item table column as a relative weight of
// the usable page width.
type column struct {
	title  string
	weight float64
	align  string
}

func lineItemColumns() []column {
	return []column{
		{title: "Description", weight: 0.50, align: "L"},
		{title: "Qty", weight: 0.10, align: "R"},
		{title: "Unit Price", weight: 0.15, align: "R"},
		{title: "Amount", weight: 0.25, align: "R"},
	}
}

// columnWidths resolves relative weights against the usable width.
// Weights that do not sum to 1 indicate an integration bug and panic.
func columnWidths(cols []column, usable float64) []float64 {
	sum := 0.0
	for _, c := range cols {
		sum += c.weight
	}
	if math.Abs(sum-1.0) > 0.001 {
		panic(fmt.Sprintf("render: column weights sum to %f, want 1.0", sum))
	}
	widths := make([]float64, len(cols))
	for i, c := range cols {
		widths[i] = c.weight * usable
	}
	return widths
}

// renderLineItemTable draws the line-item table. Row height follows the
// wrapped description line count; space for each row is ensured before
// drawing so no row is ever split across a page boundary, and the
// header is ensured together with the first row so it is never orphaned
// at the bottom of a page. Zero items render only the header row.
func (r *docRenderer) renderLineItemTable() {
	geom := r.flow.Geometry()
	cols := lineItemColumns()
	widths := columnWidths(cols, geom.UsableWidth())

	headerH := float64(tableLineH + 2*cellPad)
	minRowH := float64(tableLineH + 2*cellPad)

	r.flow.EnsureSpace(headerH + minRowH)
	r.drawTableHeader(cols, widths, headerH)

	for _, item := range r.snap.Items {
		r.pdf.SetFont(r.style.FontFamily, "", tableFontSize)
		lines := r.flow.WrapText(item.Description, widths[0]-2*cellPad)
		rowH := float64(len(lines))*tableLineH + 2*cellPad

		r.flow.EnsureSpace(rowH)
		top := r.flow.Y()

		r.setDrawColor(RGB{R: 222, G: 226, B: 230})
		r.pdf.SetLineWidth(0.4)
		x := geom.MarginLeft
		for _, w := range widths {
			r.pdf.Rect(x, top, w, rowH, "D")
			x += w
		}

		r.setTextColor(r.style.Primary)
		for i, line := range lines {
			r.pdf.SetXY(geom.MarginLeft+cellPad, top+cellPad+float64(i)*tableLineH)
			r.pdf.CellFormat(widths[0]-2*cellPad, tableLineH, r.tr(line), "", 0, "L", false, 0, "")
		}

		cells := []string{
			item.Quantity.String(),
			r.money.Format(item.UnitPrice, r.snap.CurrencyCode),
			r.money.Format(item.Total(), r.snap.CurrencyCode),
		}
		x = geom.MarginLeft + widths[0]
		for i, text := range cells {
			w := widths[i+1]
			r.pdf.SetXY(x+cellPad, top+cellPad)
			r.pdf.CellFormat(w-2*cellPad, tableLineH, r.tr(text), "", 0, cols[i+1].align, false, 0, "")
			x += w
		}

		r.pdf.SetY(top)
		r.flow.Advance(rowH)
	}

	r.flow.Advance(sectionGap)
}

// drawTableHeader draws the emphasized header row on the same column
// grid as the body rows.
func (r *docRenderer) drawTableHeader(cols []column, widths []float64, headerH float64) {
	geom := r.flow.Geometry()
	top := r.flow.Y()

	r.pdf.SetFont(r.style.FontFamily, "B", tableFontSize)
	r.setTextColor(r.style.Primary)
	r.pdf.SetFillColor(240, 240, 240)
	r.setDrawColor(RGB{R: 222, G: 226, B: 230})
	r.pdf.SetLineWidth(0.4)

	x := geom.MarginLeft
	for i, c := range cols {
		r.pdf.SetXY(x, top)
		r.pdf.CellFormat(widths[i], headerH, c.title, "1", 0, c.align, true, 0, "")
		x += widths[i]
	}

	r.pdf.SetY(top)
	r.flow.Advance(headerH)
}
