package render

// Geometry fixes the page grid in millimeters (A4 portrait).
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// FooterReserve keeps the bottom strip free for the running footer.
	FooterReserve float64
	// FirstPageHeaderHeight is the banner drawn on page one only.
	FirstPageHeaderHeight float64

	LineHeight    float64
	HeaderHeight  float64
	RowMinHeight  float64
	DividerHeight float64
}

// DefaultGeometry returns the A4 grid used for all reports.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:             210,
		PageHeight:            297,
		MarginLeft:            15,
		MarginRight:           15,
		MarginTop:             20,
		MarginBottom:          15,
		FooterReserve:         12,
		FirstPageHeaderHeight: 28,
		LineHeight:            6,
		HeaderHeight:          10,
		RowMinHeight:          7,
		DividerHeight:         4,
	}
}

// UsableWidth is the horizontal space available to block content.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// MaxY is the vertical cursor limit; placing past it overflows into the
// footer strip.
func (g Geometry) MaxY() float64 {
	return g.PageHeight - g.MarginBottom - g.FooterReserve
}

// TopY returns the starting cursor for the given page number (1-based).
// The first page starts below the banner.
func (g Geometry) TopY(pageNumber int) float64 {
	if pageNumber == 1 {
		return g.MarginTop + g.FirstPageHeaderHeight
	}
	return g.MarginTop
}
