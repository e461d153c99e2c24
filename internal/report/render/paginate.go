package render

import (
	"report-srv/internal/report/layout"
)

// TextMeasurer wraps text to a given width. Implementations return an
// error when the content cannot be measured (malformed text); the
// paginator then substitutes an empty paragraph instead of aborting.
type TextMeasurer interface {
	SplitText(text string, width float64) ([]string, error)
}

// Placed is a block fixed to a vertical position on one page.
type Placed struct {
	Block  layout.Block
	Lines  []string
	Y      float64
	Height float64
	// RowIndex numbers KeyValueRow blocks across the whole document so
	// the painter can alternate shading. Zero-based; -1 otherwise.
	RowIndex int
	// Continued marks a KeyValueRow segment carried over from the
	// previous page; the label is only drawn on the first segment.
	Continued bool
}

// Page is a sealed sequence of placed blocks.
type Page struct {
	Blocks []Placed
}

// Paginate walks blocks in order and assigns each to a page, starting a
// new page whenever the next block (or its next wrapped line) would pass
// the usable height. SectionHeader blocks are never split: one that does
// not fit moves whole to the next page. Paragraph and KeyValueRow text
// wraps, and their remaining lines continue on the next page, so no
// single block can force an oversized page.
func Paginate(blocks []layout.Block, geom Geometry, m TextMeasurer) []Page {
	p := &paginator{geom: geom, m: m}
	p.startPage()

	rowIndex := -1
	for _, b := range blocks {
		switch b.Kind {
		case layout.BlockPageBreakHint:
			p.breakPage()
		case layout.BlockDivider:
			p.placeFixed(b, geom.DividerHeight, nil, -1)
		case layout.BlockSectionHeader:
			p.placeFixed(b, geom.HeaderHeight, nil, -1)
		case layout.BlockParagraph:
			p.placeWrapped(b, p.measure(b.Text), -1)
		case layout.BlockKeyValueRow:
			rowIndex++
			p.placeWrapped(b, p.measure(b.Value), rowIndex)
		}
	}

	p.sealPage()
	return p.pages
}

type paginator struct {
	geom    Geometry
	m       TextMeasurer
	pages   []Page
	current []Placed
	cursor  float64
}

func (p *paginator) startPage() {
	p.current = nil
	p.cursor = p.geom.TopY(len(p.pages) + 1)
}

func (p *paginator) sealPage() {
	p.pages = append(p.pages, Page{Blocks: p.current})
}

func (p *paginator) breakPage() {
	p.sealPage()
	p.startPage()
}

// measure wraps text to the usable width, substituting a single empty
// line when the content cannot be measured.
func (p *paginator) measure(text string) []string {
	lines, err := p.m.SplitText(text, p.geom.UsableWidth())
	if err != nil {
		return []string{""}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// placeFixed places a block of fixed height, pushing it whole onto a new
// page when it does not fit.
func (p *paginator) placeFixed(b layout.Block, height float64, lines []string, rowIndex int) {
	if p.cursor+height > p.geom.MaxY() && len(p.current) > 0 {
		p.breakPage()
	}
	p.current = append(p.current, Placed{
		Block:    b,
		Lines:    lines,
		Y:        p.cursor,
		Height:   height,
		RowIndex: rowIndex,
	})
	p.cursor += height
}

// placeWrapped places a text block line by line, continuing on the next
// page when the current one fills up.
func (p *paginator) placeWrapped(b layout.Block, lines []string, rowIndex int) {
	continued := false
	for len(lines) > 0 {
		fit := p.linesThatFit()
		if fit == 0 {
			if len(p.current) == 0 {
				// Degenerate geometry; place one line rather than loop.
				fit = 1
			} else {
				p.breakPage()
				continue
			}
		}
		if fit > len(lines) {
			fit = len(lines)
		}

		segment := lines[:fit]
		height := float64(len(segment)) * p.geom.LineHeight
		if b.Kind == layout.BlockKeyValueRow && height < p.geom.RowMinHeight {
			height = p.geom.RowMinHeight
			if p.cursor+height > p.geom.MaxY() && len(p.current) > 0 {
				p.breakPage()
				continue
			}
		}
		p.current = append(p.current, Placed{
			Block:     b,
			Lines:     segment,
			Y:         p.cursor,
			Height:    height,
			RowIndex:  rowIndex,
			Continued: continued,
		})
		p.cursor += height

		lines = lines[fit:]
		continued = true
	}
}

func (p *paginator) linesThatFit() int {
	remaining := p.geom.MaxY() - p.cursor
	if remaining <= 0 {
		return 0
	}
	return int(remaining / p.geom.LineHeight)
}
