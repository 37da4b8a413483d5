package services

import (
	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// PlanInsertions turns the block sequence into an ordered, append-only
// list of text insertions. Remote indices are 1-based; every block
// contributes its text plus one newline, blanks included, which keeps
// inserted lines in parity with the block sequence for reconciliation.
func PlanInsertions(blocks []domain.Block) []domain.InsertionOp {
	ops := make([]domain.InsertionOp, 0, len(blocks))
	offset := int64(1)

	for _, b := range blocks {
		text := b.Text + "\n"
		ops = append(ops, domain.InsertionOp{
			Offset: offset,
			Text:   text,
		})
		offset += int64(len(text))
	}

	return ops
}
