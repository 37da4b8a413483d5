package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// IndentUnitPt is one visual tab stop in the remote document.
const IndentUnitPt = 18

// Run-level styling colours.
var (
	// AssigneeColor is the accent colour for @assignee tokens.
	AssigneeColor = domain.RGB{Red: 0.0, Green: 0.4, Blue: 0.8}

	// FooterColor is the muted grey for footer lines.
	FooterColor = domain.RGB{Red: 0.4, Green: 0.4, Blue: 0.4}
)

// Named paragraph styles and bullet presets understood by the service.
const (
	styleHeading1 = "HEADING_1"
	styleHeading2 = "HEADING_2"
	styleHeading3 = "HEADING_3"

	presetCheckbox = "BULLET_CHECKBOX"
	presetDisc     = "BULLET_DISC_CIRCLE_SQUARE"
)

// Footer lines are detected by fixed literal prefixes.
const (
	footerRecordedBy = "Meeting recorded by:"
	footerDuration   = "Duration:"
)

// assigneeRE matches an @token up to and including the colon; the colon
// is trimmed from the emitted range. Go's regexp has no lookahead, so
// this stands in for `@[^:\s]+(?=:)`.
var assigneeRE = regexp.MustCompile(`@[^:\s]+:`)

// PlanFormatting emits the flattened formatting batch for the reconciled
// pairs. Within one paragraph the structural ops come before the run ops,
// and list membership before indentation: the service derives hanging
// indents from explicit indentation, not from nesting depth alone.
//
// Run-level ops are derived from the remote paragraph text, never the
// local block text, because the remote is the ground truth for run
// boundaries.
func PlanFormatting(reconciled []domain.ReconciledRange) []domain.FormattingOp {
	var ops []domain.FormattingOp

	for _, rr := range reconciled {
		kind := rr.Block.Kind

		switch {
		case kind.IsHeading():
			ops = append(ops,
				domain.FormattingOp{
					Kind:       domain.OpParagraphStyle,
					Start:      rr.Start,
					End:        rr.End,
					NamedStyle: namedHeadingStyle(kind),
					// Indents reset to zero explicitly.
				},
				// Clearing list membership is idempotent even when the
				// paragraph was never a list item.
				domain.FormattingOp{
					Kind:  domain.OpDeleteBullets,
					Start: rr.Start,
					End:   rr.End,
				},
			)

		case kind.IsList():
			preset := presetDisc
			if kind == domain.BlockCheckbox {
				preset = presetCheckbox
			}
			level := rr.Block.Level

			ops = append(ops,
				domain.FormattingOp{
					Kind:         domain.OpCreateBullets,
					Start:        rr.Start,
					End:          rr.End,
					BulletPreset: preset,
				},
				domain.FormattingOp{
					Kind:              domain.OpParagraphStyle,
					Start:             rr.Start,
					End:               rr.End,
					IndentFirstLinePt: float64(level) * IndentUnitPt,
					IndentStartPt:     float64(level+1) * IndentUnitPt,
				},
			)
		}

		ops = append(ops, planRunStyles(rr)...)
	}

	return ops
}

// planRunStyles emits the inline assignee and footer ops for one
// reconciled paragraph.
func planRunStyles(rr domain.ReconciledRange) []domain.FormattingOp {
	text := rr.Text
	stripped := strings.TrimSpace(text)
	if stripped == "" {
		return nil
	}

	var ops []domain.FormattingOp

	for _, m := range assigneeRE.FindAllStringIndex(text, -1) {
		ops = append(ops, domain.FormattingOp{
			Kind:  domain.OpTextStyle,
			Start: rr.Start + int64(m[0]),
			End:   rr.Start + int64(m[1]-1), // exclude the colon
			Bold:  true,
			Color: AssigneeColor,
		})
	}

	if strings.HasPrefix(stripped, footerRecordedBy) || strings.HasPrefix(stripped, footerDuration) {
		clean := strings.TrimRight(text, "\n")
		if len(clean) > 0 {
			ops = append(ops, domain.FormattingOp{
				Kind:   domain.OpTextStyle,
				Start:  rr.Start,
				End:    rr.Start + int64(len(clean)),
				Italic: true,
				Color:  FooterColor,
			})
		}
	}

	return ops
}

func namedHeadingStyle(kind domain.BlockKind) string {
	switch kind {
	case domain.BlockHeading2:
		return styleHeading2
	case domain.BlockHeading3:
		return styleHeading3
	default:
		return styleHeading1
	}
}
