package layout

import (
	"encoding/json"
	"testing"
	"time"

	"report-srv/internal/report"
)

func testEngine() *Engine {
	brand := Brand{
		Name:         "PragmaHR",
		ContactLine:  "PragmaHR Consulting | hello@pragmahr.example | +91 98765 43210",
		SupportEmail: "support@pragmahr.example",
	}
	fixed := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	return NewEngine(brand, func() time.Time { return fixed })
}

func countByKind(blocks []Block, kind BlockKind) int {
	n := 0
	for _, b := range blocks {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

func TestBuildSalaryExample(t *testing.T) {
	raw := `{
		"Gross Salary": 750000,
		"Net Salary": 650000,
		"Deductions": {"PF": 90000, "ESI": 10000}
	}`
	var fields report.Fields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}

	blocks := testEngine().Build(report.KindSalary, fields)

	// Fixed prefix: brand header, title, generated-on line.
	if blocks[0].Kind != BlockSectionHeader || blocks[0].Text != "PragmaHR" {
		t.Errorf("block 0 = %+v, want brand SectionHeader", blocks[0])
	}
	if blocks[1].Kind != BlockParagraph || blocks[1].Text != "Salary Calculator Report" {
		t.Errorf("block 1 = %+v, want title paragraph", blocks[1])
	}
	if blocks[2].Kind != BlockParagraph || blocks[2].Text != "Generated on 14 March 2025" {
		t.Errorf("block 2 = %+v, want generated-on paragraph", blocks[2])
	}

	// Two top-level rows, then a nested header with two child rows.
	if blocks[3].Label != "Gross Salary" || blocks[3].Value != "₹7,50,000" {
		t.Errorf("block 3 = %+v, want Gross Salary row", blocks[3])
	}
	if blocks[4].Label != "Net Salary" || blocks[4].Value != "₹6,50,000" {
		t.Errorf("block 4 = %+v, want Net Salary row", blocks[4])
	}
	if blocks[5].Kind != BlockSectionHeader || blocks[5].Text != "Deductions" {
		t.Errorf("block 5 = %+v, want Deductions header", blocks[5])
	}
	if blocks[6].Label != "PF" || blocks[6].Value != "₹90,000" {
		t.Errorf("block 6 = %+v, want PF row", blocks[6])
	}
	if blocks[7].Label != "ESI" || blocks[7].Value != "₹10,000" {
		t.Errorf("block 7 = %+v, want ESI row", blocks[7])
	}

	// Fixed suffix: divider plus contact footer.
	last := blocks[len(blocks)-1]
	if last.Kind != BlockParagraph || last.Text == "" {
		t.Errorf("last block = %+v, want contact paragraph", last)
	}
	if blocks[len(blocks)-2].Kind != BlockDivider {
		t.Errorf("second-to-last block = %+v, want divider", blocks[len(blocks)-2])
	}
}

func TestBuildCompleteness(t *testing.T) {
	// Every non-null entry yields exactly one row or header; null entries none.
	raw := `{
		"A": 100,
		"B": "text value",
		"C": null,
		"D": {"D1": 1, "D2": null, "D3": "x"}
	}`
	var fields report.Fields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}

	blocks := testEngine().Build("custom", fields)

	// Rows: A, B, D1, D3. Headers: brand + D.
	if got := countByKind(blocks, BlockKeyValueRow); got != 4 {
		t.Errorf("KeyValueRow count = %d, want 4", got)
	}
	if got := countByKind(blocks, BlockSectionHeader); got != 2 {
		t.Errorf("SectionHeader count = %d, want 2", got)
	}
	for _, b := range blocks {
		if b.Label == "C" || b.Label == "D2" {
			t.Errorf("null field %q produced a block", b.Label)
		}
	}
}

func TestBuildEmptyFields(t *testing.T) {
	blocks := testEngine().Build(report.KindROI, nil)

	// Header/footer blocks only, never an error.
	if got := countByKind(blocks, BlockKeyValueRow); got != 0 {
		t.Errorf("KeyValueRow count = %d, want 0", got)
	}
	if len(blocks) != 5 {
		t.Errorf("block count = %d, want 5 (header, title, date, divider, contact)", len(blocks))
	}
}

func TestTitleFallback(t *testing.T) {
	if got := Title("unknown-kind"); got != "Calculator Report" {
		t.Errorf("Title(unknown) = %q, want generic fallback", got)
	}
	if got := Title(report.KindSalary); got != "Salary Calculator Report" {
		t.Errorf("Title(salary) = %q", got)
	}
}

func TestBuildDeterministic(t *testing.T) {
	raw := `{"X": 42, "Y": {"Z": 7}}`
	var fields report.Fields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}

	e := testEngine()
	first := e.Build(report.KindSalary, fields)
	second := e.Build(report.KindSalary, fields)

	if len(first) != len(second) {
		t.Fatalf("block counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("block %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFieldsUnmarshalPreservesOrder(t *testing.T) {
	raw := `{"z": 1, "a": 2, "m": 3}`
	var fields report.Fields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}

	want := []string{"z", "a", "m"}
	if len(fields) != len(want) {
		t.Fatalf("field count = %d, want %d", len(fields), len(want))
	}
	for i, label := range want {
		if fields[i].Label != label {
			t.Errorf("field %d label = %q, want %q", i, fields[i].Label, label)
		}
	}
}

func TestFieldsUnmarshalRejectsArrays(t *testing.T) {
	var fields report.Fields
	if err := json.Unmarshal([]byte(`{"bad": [1, 2]}`), &fields); err == nil {
		t.Error("expected error for array value, got nil")
	}
}
