package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicepress/internal/models"
)

func TestColumnWidthsFollowWeights(t *testing.T) {
	widths := columnWidths(lineItemColumns(), 1000)
	assert.InDelta(t, 500, widths[0], 0.01)
	assert.InDelta(t, 100, widths[1], 0.01)
	assert.InDelta(t, 150, widths[2], 0.01)
	assert.InDelta(t, 250, widths[3], 0.01)
}

func TestColumnWidthsPanicOnBadWeights(t *testing.T) {
	bad := []column{{title: "A", weight: 0.5}, {title: "B", weight: 0.3}}
	assert.Panics(t, func() { columnWidths(bad, 500) })
}

func TestZeroItemsRendersOnlyHeaderRow(t *testing.T) {
	snap := testSnapshot()
	snap.Items = nil
	r := newTestRenderer(t, snap, nil, nil)

	before := r.flow.Y()
	r.renderLineItemTable()

	headerH := float64(tableLineH + 2*cellPad)
	assert.InDelta(t, before+headerH+sectionGap, r.flow.Y(), 0.01)
	assert.Equal(t, 1, r.flow.Page())
}

func TestTableHeaderIsNeverOrphaned(t *testing.T) {
	snap := testSnapshot()
	snap.Items = snap.Items[:1]
	r := newTestRenderer(t, snap, nil, nil)
	geom := r.flow.Geometry()

	// Leave just under one header row of space at the page bottom.
	r.flow.Advance(geom.PrintableHeight() - (tableLineH + 2*cellPad) + 1)
	r.renderLineItemTable()

	// Header and first row moved to page 2 together.
	assert.Equal(t, 2, r.flow.Page())
}

func TestWrappedDescriptionsGrowRowHeight(t *testing.T) {
	long := strings.Repeat("thoroughly documented deliverable ", 8)

	short := testSnapshot()
	short.Items = []models.LineItemSnapshot{{Description: "x", Quantity: dec("1"), UnitPrice: dec("10")}}
	rShort := newTestRenderer(t, short, nil, nil)
	startShort := rShort.flow.Y()
	rShort.renderLineItemTable()
	shortDelta := rShort.flow.Y() - startShort

	wrapped := testSnapshot()
	wrapped.Items = []models.LineItemSnapshot{{Description: long, Quantity: dec("1"), UnitPrice: dec("10")}}
	rWrapped := newTestRenderer(t, wrapped, nil, nil)
	startWrapped := rWrapped.flow.Y()
	rWrapped.renderLineItemTable()
	wrappedDelta := rWrapped.flow.Y() - startWrapped

	assert.Greater(t, wrappedDelta, shortDelta)
}

func TestRowsAreNeverSplitAcrossPages(t *testing.T) {
	snap := testSnapshot()
	snap.Items = nil
	for i := 0; i < 60; i++ {
		snap.Items = append(snap.Items, models.LineItemSnapshot{
			Description: "line item with a description long enough to occupy two wrapped lines inside the description column of the table",
			Quantity:    dec("1"),
			UnitPrice:   dec("10"),
		})
	}
	r := newTestRenderer(t, snap, nil, nil)
	geom := r.flow.Geometry()

	r.renderLineItemTable()

	// The cursor always sits above the printable bottom after the last
	// row (before the trailing section gap): a split row would have
	// left it past the boundary.
	assert.LessOrEqual(t, r.flow.Y()-sectionGap, geom.PrintableBottom()+0.01)
	assert.Greater(t, r.flow.Page(), 1)
}
