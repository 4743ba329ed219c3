package render

// PageGeometry fixes the page dimensions and margins for one document.
// All values are PDF points (1/72 inch). An A4 page is 595.28 x 841.89.
type PageGeometry struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
}

// A4Geometry returns the default page geometry used for all documents.
func A4Geometry() PageGeometry {
	return PageGeometry{
		Width:        595.28,
		Height:       841.89,
		MarginLeft:   40,
		MarginTop:    40,
		MarginRight:  40,
		MarginBottom: 48,
	}
}

// UsableWidth is the horizontal space between the left and right margins.
func (g PageGeometry) UsableWidth() float64 {
	return g.Width - g.MarginLeft - g.MarginRight
}

// PrintableBottom is the lowest y position content may occupy.
func (g PageGeometry) PrintableBottom() float64 {
	return g.Height - g.MarginBottom
}

// PrintableHeight is the vertical space available for content on one page.
func (g PageGeometry) PrintableHeight() float64 {
	return g.Height - g.MarginTop - g.MarginBottom
}

// Config bundles the renderer tunables threaded through assembly.
type Config struct {
	Geometry PageGeometry

	// ThumbnailMax clamps the longest edge of a photo-appendix image.
	ThumbnailMax float64
	// ThumbnailGap separates thumbnails within and between rows.
	ThumbnailGap float64
}

// DefaultConfig returns the configuration used when no overrides are given.
func DefaultConfig() Config {
	return Config{
		Geometry:     A4Geometry(),
		ThumbnailMax: 150,
		ThumbnailGap: 10,
	}
}
