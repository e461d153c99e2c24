package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"report-srv/internal/report/layout"
)

// fakeMeasurer wraps at a fixed number of characters per line so tests
// control wrapping without a PDF engine. Text containing "\x00" is
// treated as unmeasurable.
type fakeMeasurer struct {
	charsPerLine int
}

func (m *fakeMeasurer) SplitText(text string, _ float64) ([]string, error) {
	if strings.Contains(text, "\x00") {
		return nil, errors.New("unmeasurable text")
	}
	if text == "" {
		return []string{""}, nil
	}
	var lines []string
	for len(text) > m.charsPerLine {
		lines = append(lines, text[:m.charsPerLine])
		text = text[m.charsPerLine:]
	}
	return append(lines, text), nil
}

func testGeometry() Geometry {
	return DefaultGeometry()
}

func pageUsedHeight(g Geometry, pageNumber int, page Page) float64 {
	if len(page.Blocks) == 0 {
		return 0
	}
	last := page.Blocks[len(page.Blocks)-1]
	return last.Y + last.Height - g.TopY(pageNumber)
}

func TestPaginateSinglePage(t *testing.T) {
	geom := testGeometry()
	blocks := []layout.Block{
		layout.SectionHeader("Acme"),
		layout.Paragraph("Salary Report"),
		layout.KeyValueRow("Monthly CTC", "1,00,000"),
		layout.Divider(),
		layout.Paragraph("Questions? support@acme.example"),
	}

	pages := Paginate(blocks, geom, &fakeMeasurer{charsPerLine: 80})
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if got := len(pages[0].Blocks); got != len(blocks) {
		t.Fatalf("expected %d placed blocks, got %d", len(blocks), got)
	}
}

func TestPaginateOverflowSpansPages(t *testing.T) {
	geom := testGeometry()

	var blocks []layout.Block
	for i := 0; i < 80; i++ {
		blocks = append(blocks, layout.KeyValueRow(fmt.Sprintf("Entry %d", i), "value"))
	}

	pages := Paginate(blocks, geom, &fakeMeasurer{charsPerLine: 80})
	if len(pages) < 2 {
		t.Fatalf("expected at least 2 pages, got %d", len(pages))
	}

	for i, page := range pages {
		used := pageUsedHeight(geom, i+1, page)
		limit := geom.MaxY() - geom.TopY(i+1)
		if used > limit+0.001 {
			t.Errorf("page %d used %.1fmm, limit %.1fmm", i+1, used, limit)
		}
	}
}

func TestPaginateCursorNeverPassesLimit(t *testing.T) {
	geom := testGeometry()

	var blocks []layout.Block
	for i := 0; i < 30; i++ {
		blocks = append(blocks, layout.SectionHeader(fmt.Sprintf("Section %d", i)))
		blocks = append(blocks, layout.Paragraph(strings.Repeat("lorem ipsum ", 40)))
	}

	pages := Paginate(blocks, geom, &fakeMeasurer{charsPerLine: 60})
	for i, page := range pages {
		for _, placed := range page.Blocks {
			if placed.Y+placed.Height > geom.MaxY()+0.001 {
				t.Errorf("page %d: block at y=%.1f height=%.1f crosses limit %.1f",
					i+1, placed.Y, placed.Height, geom.MaxY())
			}
		}
	}
}

func TestPaginateSectionHeaderMovesWhole(t *testing.T) {
	geom := testGeometry()

	// Fill page one almost to the limit, then add a header.
	var blocks []layout.Block
	for i := 0; i < 37; i++ {
		blocks = append(blocks, layout.Paragraph("filler line"))
	}
	blocks = append(blocks, layout.SectionHeader("Deductions"))

	pages := Paginate(blocks, geom, &fakeMeasurer{charsPerLine: 80})
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}

	var headerPlacements int
	for _, page := range pages {
		for _, placed := range page.Blocks {
			if placed.Block.Kind == layout.BlockSectionHeader {
				headerPlacements++
				if placed.Y+placed.Height > geom.MaxY()+0.001 {
					t.Errorf("header crosses usable limit: y=%.1f height=%.1f", placed.Y, placed.Height)
				}
			}
		}
	}
	if headerPlacements != 1 {
		t.Errorf("section header placed %d times, want exactly 1", headerPlacements)
	}

	last := pages[1].Blocks[len(pages[1].Blocks)-1]
	if last.Block.Kind != layout.BlockSectionHeader {
		t.Errorf("expected header on page 2, last block kind = %d", last.Block.Kind)
	}
}

func TestPaginateLongParagraphContinues(t *testing.T) {
	geom := testGeometry()

	long := strings.Repeat("x", 60*60) // 60 wrapped lines, more than one page
	pages := Paginate([]layout.Block{layout.Paragraph(long)}, geom, &fakeMeasurer{charsPerLine: 60})

	if len(pages) < 2 {
		t.Fatalf("expected paragraph to continue onto a second page, got %d pages", len(pages))
	}
	var total int
	for _, page := range pages {
		for _, placed := range page.Blocks {
			total += len(placed.Lines)
		}
	}
	if total != 60 {
		t.Errorf("expected 60 lines placed across pages, got %d", total)
	}
}

func TestPaginateRowContinuationKeepsLabelOnce(t *testing.T) {
	geom := testGeometry()

	var blocks []layout.Block
	for i := 0; i < 20; i++ {
		blocks = append(blocks, layout.Paragraph("filler"))
	}
	// 60 wrapped lines cannot fit on any single page, so the row must
	// split regardless of where its first segment starts.
	blocks = append(blocks, layout.KeyValueRow("Notes", strings.Repeat("y", 60*60)))

	pages := Paginate(blocks, geom, &fakeMeasurer{charsPerLine: 60})
	if len(pages) < 2 {
		t.Fatalf("expected row to spill onto a second page, got %d pages", len(pages))
	}

	var segments []Placed
	for _, page := range pages {
		for _, placed := range page.Blocks {
			if placed.Block.Kind == layout.BlockKeyValueRow {
				segments = append(segments, placed)
			}
		}
	}
	if len(segments) < 2 {
		t.Fatalf("expected at least 2 row segments, got %d", len(segments))
	}
	if segments[0].Continued {
		t.Error("first segment should not be marked continued")
	}
	for i, seg := range segments[1:] {
		if !seg.Continued {
			t.Errorf("segment %d should be marked continued", i+1)
		}
	}
}

func TestPaginateRowIndexAlternates(t *testing.T) {
	geom := testGeometry()
	blocks := []layout.Block{
		layout.KeyValueRow("A", "1"),
		layout.Paragraph("between"),
		layout.KeyValueRow("B", "2"),
		layout.KeyValueRow("C", "3"),
	}

	pages := Paginate(blocks, geom, &fakeMeasurer{charsPerLine: 80})
	var indexes []int
	for _, placed := range pages[0].Blocks {
		if placed.Block.Kind == layout.BlockKeyValueRow {
			indexes = append(indexes, placed.RowIndex)
		} else if placed.RowIndex != -1 {
			t.Errorf("non-row block has row index %d", placed.RowIndex)
		}
	}
	want := []int{0, 1, 2}
	if len(indexes) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(indexes))
	}
	for i := range want {
		if indexes[i] != want[i] {
			t.Errorf("row %d index = %d, want %d", i, indexes[i], want[i])
		}
	}
}

func TestPaginateUnmeasurableTextBecomesEmptyLine(t *testing.T) {
	geom := testGeometry()
	blocks := []layout.Block{
		layout.Paragraph("good text"),
		layout.Paragraph("bad\x00text"),
		layout.KeyValueRow("Label", "also\x00bad"),
	}

	pages := Paginate(blocks, geom, &fakeMeasurer{charsPerLine: 80})
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if got := len(pages[0].Blocks); got != 3 {
		t.Fatalf("expected all 3 blocks placed, got %d", got)
	}
	for _, idx := range []int{1, 2} {
		placed := pages[0].Blocks[idx]
		if len(placed.Lines) != 1 || placed.Lines[0] != "" {
			t.Errorf("block %d: expected single empty line substitute, got %v", idx, placed.Lines)
		}
	}
}

func TestPaginatePageBreakHint(t *testing.T) {
	geom := testGeometry()
	blocks := []layout.Block{
		layout.Paragraph("first"),
		layout.PageBreakHint(),
		layout.Paragraph("second"),
	}

	pages := Paginate(blocks, geom, &fakeMeasurer{charsPerLine: 80})
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0].Blocks) != 1 || len(pages[1].Blocks) != 1 {
		t.Fatalf("expected one block per page, got %d and %d", len(pages[0].Blocks), len(pages[1].Blocks))
	}
}
