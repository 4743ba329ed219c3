package render

import (
	"log"
	"strings"
)

const (
	bodyFontSize = 10
	bodyLineH    = 14
	smallFontSz  = 9
	smallLineH   = 12

	sectionGap = 18
	logoMaxPt  = 48

	displayDateLayout = "02 Jan 2006"
)

// renderHeader draws the branding band: company name (template override
// wins), optional logo, document title and number, and a rule in the
// primary color. A logo that cannot be loaded or decoded is skipped.
func (r *docRenderer) renderHeader() {
	geom := r.flow.Geometry()
	usable := geom.UsableWidth()

	r.flow.EnsureSpace(logoMaxPt + bodyLineH + sectionGap)
	top := r.flow.Y()

	name := r.snap.BusinessName
	if r.style.HasBranding && r.style.CompanyName != "" {
		name = r.style.CompanyName
	}

	r.pdf.SetFont(r.style.FontFamily, "B", 18)
	r.setTextColor(r.style.Primary)
	r.pdf.SetXY(geom.MarginLeft, top)
	r.pdf.CellFormat(usable*0.6, 22, r.tr(name), "", 0, "L", false, 0, "")

	title := strings.ToUpper(string(r.snap.DocumentType))
	r.pdf.SetFont(r.style.FontFamily, "B", 16)
	r.pdf.CellFormat(usable*0.4, 22, title, "", 0, "R", false, 0, "")

	r.pdf.SetFont(r.style.FontFamily, "", bodyFontSize)
	r.setTextColor(r.style.Secondary)
	r.pdf.SetXY(geom.MarginLeft, top+24)
	r.pdf.CellFormat(usable, bodyLineH, r.tr("# "+r.snap.Number), "", 0, "R", false, 0, "")

	bottom := top + 24 + bodyLineH

	logoRef := r.style.LogoRef
	if logoRef == "" {
		logoRef = r.snap.LogoRef
	}
	if logoRef != "" {
		if thumb, err := r.loadThumbnail(logoRef, logoMaxPt); err != nil {
			log.Printf("WARN: skipping logo %q: %v", logoRef, err)
		} else {
			r.placeImage(thumb, geom.MarginLeft, top+24)
			if top+24+thumb.h > bottom {
				bottom = top + 24 + thumb.h
			}
		}
	}

	bottom += 8
	r.setDrawColor(r.style.Primary)
	r.pdf.SetLineWidth(1.2)
	r.pdf.Line(geom.MarginLeft, bottom, geom.Width-geom.MarginRight, bottom)

	r.pdf.SetY(top)
	r.flow.Advance(bottom - top + sectionGap)
}

// renderPartyInfo draws the customer block and the business block side
// by side. Either block renders only the lines it has data for.
func (r *docRenderer) renderPartyInfo() {
	geom := r.flow.Geometry()
	colW := geom.UsableWidth() / 2

	customer := r.partyLines(r.snap.CustomerName, r.snap.CustomerAddress, r.snap.CustomerEmail, "")
	business := r.partyLines(r.snap.BusinessName, r.snap.BusinessAddress, r.snap.BusinessEmail, r.snap.BusinessPhone)
	if r.snap.BusinessRegistrationID != "" {
		business = append(business, "Reg. "+r.snap.BusinessRegistrationID)
	}
	if len(customer) == 0 && len(business) == 0 {
		return
	}

	rows := len(customer)
	if len(business) > rows {
		rows = len(business)
	}
	blockH := bodyLineH + float64(rows)*smallLineH

	r.flow.EnsureSpace(blockH + sectionGap)
	top := r.flow.Y()

	r.pdf.SetFont(r.style.FontFamily, "B", smallFontSz)
	r.setTextColor(r.style.Secondary)
	r.pdf.SetXY(geom.MarginLeft, top)
	r.pdf.CellFormat(colW, bodyLineH, "BILL TO", "", 0, "L", false, 0, "")
	r.pdf.CellFormat(colW, bodyLineH, "FROM", "", 0, "L", false, 0, "")

	r.pdf.SetFont(r.style.FontFamily, "", smallFontSz)
	r.setTextColor(r.style.Primary)
	for i, line := range customer {
		r.pdf.SetXY(geom.MarginLeft, top+bodyLineH+float64(i)*smallLineH)
		r.pdf.CellFormat(colW-8, smallLineH, r.tr(line), "", 0, "L", false, 0, "")
	}
	for i, line := range business {
		r.pdf.SetXY(geom.MarginLeft+colW, top+bodyLineH+float64(i)*smallLineH)
		r.pdf.CellFormat(colW-8, smallLineH, r.tr(line), "", 0, "L", false, 0, "")
	}

	r.pdf.SetY(top)
	r.flow.Advance(blockH + sectionGap)
}

// partyLines flattens one party into display lines, wrapping the
// address against the column width and dropping empty fields.
func (r *docRenderer) partyLines(name, address, email, phone string) []string {
	geom := r.flow.Geometry()
	colW := geom.UsableWidth()/2 - 8

	r.pdf.SetFont(r.style.FontFamily, "", smallFontSz)

	var lines []string
	if name != "" {
		lines = append(lines, name)
	}
	for _, part := range strings.Split(address, "\n") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lines = append(lines, r.flow.WrapText(part, colW)...)
	}
	if email != "" {
		lines = append(lines, email)
	}
	if phone != "" {
		lines = append(lines, phone)
	}
	return lines
}

// renderMetadata draws the issue and due dates as label/value lines.
func (r *docRenderer) renderMetadata() {
	type row struct{ label, value string }

	var rows []row
	if !r.snap.IssueDate.IsZero() {
		rows = append(rows, row{"Issue Date", r.snap.IssueDate.Format(displayDateLayout)})
	}
	if !r.snap.DueDate.IsZero() {
		rows = append(rows, row{"Due Date", r.snap.DueDate.Format(displayDateLayout)})
	}
	if len(rows) == 0 {
		return
	}

	geom := r.flow.Geometry()
	blockH := float64(len(rows)) * smallLineH
	r.flow.EnsureSpace(blockH + sectionGap)
	top := r.flow.Y()

	for i, m := range rows {
		y := top + float64(i)*smallLineH
		r.pdf.SetFont(r.style.FontFamily, "B", smallFontSz)
		r.setTextColor(r.style.Secondary)
		r.pdf.SetXY(geom.MarginLeft, y)
		r.pdf.CellFormat(80, smallLineH, m.label, "", 0, "L", false, 0, "")

		r.pdf.SetFont(r.style.FontFamily, "", smallFontSz)
		r.setTextColor(r.style.Primary)
		r.pdf.CellFormat(160, smallLineH, r.tr(m.value), "", 0, "L", false, 0, "")
	}

	r.pdf.SetY(top)
	r.flow.Advance(blockH + sectionGap)
}

// renderTotals draws the right-aligned totals block: subtotal, discount
// when present, tax, and the emphasized grand total. All amounts go
// through the currency formatter.
func (r *docRenderer) renderTotals() {
	geom := r.flow.Geometry()
	const blockW, labelW, valueW = 220.0, 120.0, 100.0
	x := geom.Width - geom.MarginRight - blockW

	type row struct {
		label, value string
		emphasize    bool
	}

	rows := []row{
		{label: "Subtotal", value: r.money.Format(r.snap.Subtotal, r.snap.CurrencyCode)},
	}
	if !r.snap.Discount.IsZero() {
		rows = append(rows, row{label: "Discount", value: "-" + r.money.Format(r.snap.Discount, r.snap.CurrencyCode)})
	}
	taxLabel := "Tax"
	if !r.snap.TaxRate.IsZero() {
		taxLabel = "Tax (" + r.snap.TaxRate.String() + "%)"
	}
	rows = append(rows,
		row{label: taxLabel, value: r.money.Format(r.snap.TaxAmount, r.snap.CurrencyCode)},
		row{label: "Total", value: r.money.Format(r.snap.Total, r.snap.CurrencyCode), emphasize: true},
	)

	blockH := float64(len(rows))*bodyLineH + 6
	r.flow.EnsureSpace(blockH + sectionGap)
	top := r.flow.Y()

	y := top
	for _, t := range rows {
		if t.emphasize {
			r.setDrawColor(r.style.Primary)
			r.pdf.SetLineWidth(0.8)
			r.pdf.Line(x, y+2, x+blockW, y+2)
			y += 6
			r.pdf.SetFont(r.style.FontFamily, "B", 11)
			r.setTextColor(r.style.Primary)
		} else {
			r.pdf.SetFont(r.style.FontFamily, "", bodyFontSize)
			r.setTextColor(r.style.Secondary)
		}
		r.pdf.SetXY(x, y)
		r.pdf.CellFormat(labelW, bodyLineH, t.label, "", 0, "R", false, 0, "")
		r.pdf.CellFormat(valueW, bodyLineH, r.tr(t.value), "", 0, "R", false, 0, "")
		y += bodyLineH
	}

	r.pdf.SetY(top)
	r.flow.Advance(blockH + sectionGap)
}

// renderFooter draws the payment terms and optional notes. The whole
// section is suppressed by the hide-payment-terms style flag upstream.
func (r *docRenderer) renderFooter() {
	geom := r.flow.Geometry()
	usable := geom.UsableWidth()

	terms := r.style.PaymentTerms
	if terms == "" {
		terms = "Payment is due within 30 days of the invoice date."
	}

	r.pdf.SetFont(r.style.FontFamily, "B", smallFontSz)
	r.writeHeading("Payment Terms")

	r.pdf.SetFont(r.style.FontFamily, "", smallFontSz)
	r.setTextColor(r.style.Primary)
	for _, line := range r.flow.WrapText(terms, usable) {
		r.flow.EnsureSpace(smallLineH)
		r.pdf.SetXY(geom.MarginLeft, r.flow.Y())
		r.pdf.CellFormat(usable, smallLineH, r.tr(line), "", 0, "L", false, 0, "")
		r.flow.Advance(smallLineH)
	}

	if r.snap.Notes != "" {
		r.flow.Advance(6)
		r.pdf.SetFont(r.style.FontFamily, "B", smallFontSz)
		r.writeHeading("Notes")
		r.pdf.SetFont(r.style.FontFamily, "", smallFontSz)
		r.setTextColor(r.style.Primary)
		for _, line := range r.flow.WrapText(r.snap.Notes, usable) {
			r.flow.EnsureSpace(smallLineH)
			r.pdf.SetXY(geom.MarginLeft, r.flow.Y())
			r.pdf.CellFormat(usable, smallLineH, r.tr(line), "", 0, "L", false, 0, "")
			r.flow.Advance(smallLineH)
		}
	}

	r.flow.EnsureSpace(smallLineH + 8)
	r.flow.Advance(8)
	r.pdf.SetFont(r.style.FontFamily, "I", smallFontSz)
	r.setTextColor(r.style.Secondary)
	r.pdf.SetXY(geom.MarginLeft, r.flow.Y())
	r.pdf.CellFormat(usable, smallLineH, "Thank you for your business!", "", 0, "L", false, 0, "")
	r.flow.Advance(smallLineH)
}

// writeHeading draws a small secondary-color section heading.
func (r *docRenderer) writeHeading(text string) {
	geom := r.flow.Geometry()
	r.flow.EnsureSpace(bodyLineH)
	r.setTextColor(r.style.Secondary)
	r.pdf.SetXY(geom.MarginLeft, r.flow.Y())
	r.pdf.CellFormat(geom.UsableWidth(), bodyLineH, text, "", 0, "L", false, 0, "")
	r.flow.Advance(bodyLineH)
}

func (r *docRenderer) setTextColor(c RGB) {
	r.pdf.SetTextColor(c.R, c.G, c.B)
}

func (r *docRenderer) setDrawColor(c RGB) {
	r.pdf.SetDrawColor(c.R, c.G, c.B)
}
