package render

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"

	"report-srv/internal/report/layout"
)

const (
	fontFamily   = "Helvetica"
	bodyFontSize = 10
	headerSize   = 13
	footerSize   = 8
	bannerSize   = 16
)

// PDFRenderer paints block sequences into paginated PDF documents.
type PDFRenderer struct {
	geom  Geometry
	brand layout.Brand
}

// NewPDFRenderer creates a renderer with the given grid and branding.
func NewPDFRenderer(geom Geometry, brand layout.Brand) *PDFRenderer {
	return &PDFRenderer{geom: geom, brand: brand}
}

// Render paints the blocks onto A4 pages and returns the PDF bytes plus
// the final page count. Every page gets the running footer with its
// "Page X of Y" label; the first page also gets the brand banner.
func (r *PDFRenderer) Render(blocks []layout.Block) ([]byte, int, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(r.geom.MarginLeft, r.geom.MarginTop, r.geom.MarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(fontFamily, "", bodyFontSize)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	measurer := &pdfMeasurer{pdf: pdf, tr: tr}

	pages := Paginate(blocks, r.geom, measurer)
	total := len(pages)

	for i, page := range pages {
		pdf.AddPage()
		if i == 0 {
			r.drawBanner(pdf, tr)
		}
		for _, placed := range page.Blocks {
			r.drawBlock(pdf, tr, placed)
		}
		r.drawFooter(pdf, tr, i+1, total)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), total, nil
}

func (r *PDFRenderer) drawBanner(pdf *gofpdf.Fpdf, tr func(string) string) {
	g := r.geom

	// Logo area: brand-green band with the name reversed out.
	pdf.SetFillColor(22, 101, 52)
	pdf.Rect(g.MarginLeft, g.MarginTop, g.UsableWidth(), g.FirstPageHeaderHeight-6, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", bannerSize)
	pdf.Text(g.MarginLeft+4, g.MarginTop+10, tr(r.brand.Name))

	pdf.SetFont(fontFamily, "", footerSize)
	pdf.Text(g.MarginLeft+4, g.MarginTop+17, tr("Generated for you by the "+r.brand.Name+" calculator suite"))

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "", bodyFontSize)
}

func (r *PDFRenderer) drawBlock(pdf *gofpdf.Fpdf, tr func(string) string, placed Placed) {
	g := r.geom
	switch placed.Block.Kind {
	case layout.BlockSectionHeader:
		pdf.SetFont(fontFamily, "B", headerSize)
		pdf.Text(g.MarginLeft, placed.Y+g.HeaderHeight-3, tr(placed.Block.Text))
		pdf.SetFont(fontFamily, "", bodyFontSize)

	case layout.BlockKeyValueRow:
		// Subtle zebra shading on even rows, purely cosmetic.
		if placed.RowIndex%2 == 0 {
			pdf.SetFillColor(243, 244, 246)
			pdf.Rect(g.MarginLeft, placed.Y, g.UsableWidth(), placed.Height, "F")
		}
		if !placed.Continued {
			pdf.SetFont(fontFamily, "B", bodyFontSize)
			pdf.Text(g.MarginLeft+2, placed.Y+g.LineHeight-1, tr(placed.Block.Label))
			pdf.SetFont(fontFamily, "", bodyFontSize)
		}
		for i, line := range placed.Lines {
			pdf.Text(g.MarginLeft+g.UsableWidth()/2, placed.Y+float64(i+1)*g.LineHeight-1, tr(line))
		}

	case layout.BlockParagraph:
		for i, line := range placed.Lines {
			pdf.Text(g.MarginLeft, placed.Y+float64(i+1)*g.LineHeight-1, tr(line))
		}

	case layout.BlockDivider:
		y := placed.Y + g.DividerHeight/2
		pdf.SetDrawColor(209, 213, 219)
		pdf.Line(g.MarginLeft, y, g.PageWidth-g.MarginRight, y)
		pdf.SetDrawColor(0, 0, 0)
	}
}

func (r *PDFRenderer) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, pageNumber, total int) {
	g := r.geom
	y := g.PageHeight - g.MarginBottom - 4

	pdf.SetFont(fontFamily, "", footerSize)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(g.MarginLeft, y, tr(r.brand.Name+" | "+r.brand.ContactLine))

	label := fmt.Sprintf("Page %d of %d", pageNumber, total)
	pdf.Text(g.PageWidth-g.MarginRight-pdf.GetStringWidth(label), y, label)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "", bodyFontSize)
}

// pdfMeasurer wraps gofpdf's text splitting. Text that is not valid
// UTF-8 cannot be measured and reports an error.
type pdfMeasurer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (m *pdfMeasurer) SplitText(text string, width float64) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("text is not valid UTF-8")
	}
	if text == "" {
		return []string{""}, nil
	}
	return m.pdf.SplitText(m.tr(text), width), nil
}
