package layout

// BlockKind discriminates drawable block variants.
type BlockKind int

const (
	BlockSectionHeader BlockKind = iota
	BlockKeyValueRow
	BlockParagraph
	BlockDivider
	BlockPageBreakHint
)

// Block is one atomic drawable unit of report content.
type Block struct {
	Kind  BlockKind
	Text  string // SectionHeader, Paragraph
	Label string // KeyValueRow
	Value string // KeyValueRow
}

// SectionHeader creates a section heading block.
func SectionHeader(text string) Block {
	return Block{Kind: BlockSectionHeader, Text: text}
}

// KeyValueRow creates a label/value row block.
func KeyValueRow(label, value string) Block {
	return Block{Kind: BlockKeyValueRow, Label: label, Value: value}
}

// Paragraph creates a wrapped text block.
func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// Divider creates a horizontal rule block.
func Divider() Block {
	return Block{Kind: BlockDivider}
}

// PageBreakHint forces the next block onto a new page.
func PageBreakHint() Block {
	return Block{Kind: BlockPageBreakHint}
}
