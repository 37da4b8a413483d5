package domain

// BlockKind classifies a parsed markdown line.
type BlockKind string

// Block kinds recognised by the parser.
const (
	// BlockBlank is an empty line or a `---` separator.
	BlockBlank BlockKind = "blank"

	// BlockHeading1 is a `#` heading.
	BlockHeading1 BlockKind = "heading1"

	// BlockHeading2 is a `##` heading.
	BlockHeading2 BlockKind = "heading2"

	// BlockHeading3 is a `###` heading.
	BlockHeading3 BlockKind = "heading3"

	// BlockBullet is a `-` or `*` list item.
	BlockBullet BlockKind = "bullet"

	// BlockCheckbox is a `- [ ]` or `* [ ]` task item.
	BlockCheckbox BlockKind = "checkbox"

	// BlockParagraph is any other non-empty line.
	BlockParagraph BlockKind = "paragraph"
)

// Block is one classified unit of the input document. Blocks correspond
// 1:1 to input lines, blank lines included, so that downstream range
// reconciliation can rely on a stable line-for-line mapping between
// local blocks and remote paragraphs.
type Block struct {
	// Kind is the block classification.
	Kind BlockKind

	// Text is the display text with markdown markers stripped.
	Text string

	// Level is the nesting depth for bullet and checkbox blocks,
	// derived from leading whitespace (2 spaces = 1 level).
	// Zero and meaningless for all other kinds.
	Level int
}

// IsHeading returns true for heading blocks of any depth.
func (k BlockKind) IsHeading() bool {
	return k == BlockHeading1 || k == BlockHeading2 || k == BlockHeading3
}

// IsList returns true for bullet and checkbox blocks.
func (k BlockKind) IsList() bool {
	return k == BlockBullet || k == BlockCheckbox
}

// HeadingDepth returns 1-3 for heading kinds and 0 otherwise.
func (k BlockKind) HeadingDepth() int {
	switch k {
	case BlockHeading1:
		return 1
	case BlockHeading2:
		return 2
	case BlockHeading3:
		return 3
	default:
		return 0
	}
}
