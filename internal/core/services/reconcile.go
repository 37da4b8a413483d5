package services

import (
	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// Reconcile pairs the i-th block with the i-th remote paragraph range.
// This is a positional join, not a content match: it holds because every
// inserted op ends with exactly one newline and contains no internal
// newline, so the service reports one paragraph per inserted line.
//
// When the counts differ the result is truncated to the shorter list.
// Excess blocks (or excess remote paragraphs) are left unformatted
// rather than treated as an error.
func Reconcile(blocks []domain.Block, paragraphs []domain.ParagraphRange) []domain.ReconciledRange {
	n := len(blocks)
	if len(paragraphs) < n {
		n = len(paragraphs)
	}

	reconciled := make([]domain.ReconciledRange, 0, n)
	for i := 0; i < n; i++ {
		reconciled = append(reconciled, domain.ReconciledRange{
			Block: blocks[i],
			Start: paragraphs[i].Start,
			End:   paragraphs[i].End,
			Text:  paragraphs[i].Text,
		})
	}

	return reconciled
}
