package domain

// InsertionOp describes where a block's raw text lands in the remote
// document. Offsets are 1-based and strictly increasing: each op starts
// where the previous one ended, so no two ops overlap.
type InsertionOp struct {
	// Offset is the 1-based logical insertion index.
	Offset int64

	// Text is the block text followed by exactly one newline.
	// A blank block inserts a bare newline.
	Text string
}

// ParagraphRange is one paragraph-like content element as reported by
// the remote document after insertion.
type ParagraphRange struct {
	// Start is the paragraph's first character index (inclusive).
	Start int64

	// End is the index one past the paragraph's last character,
	// covering the trailing newline.
	End int64

	// Text is the paragraph's literal run content, including the
	// trailing newline. The remote is the ground truth for run
	// boundaries, so inline styling works on this, never on the
	// local block text.
	Text string
}

// ReconciledRange pairs a local block with the physical range the remote
// service assigned to its paragraph.
type ReconciledRange struct {
	Block Block
	Start int64
	End   int64

	// Text is the remote paragraph's literal content.
	Text string
}

// FormattingOpKind discriminates the mutation carried by a FormattingOp.
type FormattingOpKind string

// Formatting op kinds.
const (
	// OpParagraphStyle sets a named style and/or indentation on a
	// paragraph range.
	OpParagraphStyle FormattingOpKind = "paragraph_style"

	// OpCreateBullets places a paragraph range into a bulleted list.
	OpCreateBullets FormattingOpKind = "create_bullets"

	// OpDeleteBullets removes any list membership from a paragraph range.
	OpDeleteBullets FormattingOpKind = "delete_bullets"

	// OpTextStyle styles a run of characters within a paragraph.
	OpTextStyle FormattingOpKind = "text_style"
)

// RGB is a colour with components in [0, 1].
type RGB struct {
	Red   float64
	Green float64
	Blue  float64
}

// FormattingOp is a single style or structure mutation targeting a
// character range in the remote document. Ops are transient: generated
// fresh per conversion, submitted once as a batch, then discarded.
//
// Only the fields relevant to Kind are meaningful; the rest stay zero.
type FormattingOp struct {
	Kind  FormattingOpKind
	Start int64
	End   int64

	// NamedStyle is the named paragraph style (OpParagraphStyle).
	// Empty means the op only adjusts indentation.
	NamedStyle string

	// IndentFirstLinePt and IndentStartPt are indentation magnitudes
	// in points (OpParagraphStyle).
	IndentFirstLinePt float64
	IndentStartPt     float64

	// BulletPreset names the list glyph preset (OpCreateBullets).
	BulletPreset string

	// Bold and Italic set character weight/slant (OpTextStyle).
	Bold   bool
	Italic bool

	// Color is the foreground colour (OpTextStyle).
	Color RGB
}
