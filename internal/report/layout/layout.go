package layout

import (
	"fmt"
	"time"

	"report-srv/internal/report"
)

// Brand carries the fixed styling strings stamped onto every report.
type Brand struct {
	Name         string
	ContactLine  string
	SupportEmail string
}

// Engine transforms a report request into an ordered block sequence.
// It is a pure transformation: no I/O, deterministic given the same
// inputs and clock.
type Engine struct {
	brand Brand
	now   func() time.Time
}

// NewEngine creates a layout engine. A nil clock defaults to time.Now.
func NewEngine(brand Brand, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{brand: brand, now: now}
}

var kindTitles = map[string]string{
	report.KindSalary:     "Salary Calculator Report",
	report.KindROI:        "ROI Calculator Report",
	report.KindEngagement: "Engagement Calculator Report",
	report.KindAttrition:  "Attrition Cost Report",
}

// Title returns the human-readable title for a report kind. Unknown kinds
// get a generic title instead of an error.
func Title(reportKind string) string {
	if title, ok := kindTitles[reportKind]; ok {
		return title
	}
	return "Calculator Report"
}

// Build converts the fields of a report request into drawable blocks.
// Always prepends the brand header, title and generated-on line, and
// always appends a divider plus the contact footer. Null fields are
// skipped; empty input still yields the fixed header/footer blocks.
func (e *Engine) Build(reportKind string, fields report.Fields) []Block {
	blocks := []Block{
		SectionHeader(e.brand.Name),
		Paragraph(Title(reportKind)),
		Paragraph(fmt.Sprintf("Generated on %s", e.now().Format("2 January 2006"))),
	}

	blocks = appendFieldBlocks(blocks, fields)

	blocks = append(blocks,
		Divider(),
		Paragraph(e.brand.ContactLine),
	)
	return blocks
}

func appendFieldBlocks(blocks []Block, fields report.Fields) []Block {
	for _, f := range fields {
		switch f.Kind {
		case report.FieldNumber:
			blocks = append(blocks, KeyValueRow(f.Label, FormatINR(f.Number)))
		case report.FieldText:
			blocks = append(blocks, KeyValueRow(f.Label, f.Text))
		case report.FieldGroup:
			blocks = append(blocks, SectionHeader(f.Label))
			blocks = appendFieldBlocks(blocks, f.Group)
		case report.FieldEmpty:
			// null values never produce a row
		}
	}
	return blocks
}
