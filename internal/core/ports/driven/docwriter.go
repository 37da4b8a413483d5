package driven

import (
	"context"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// DocumentWriter is the remote document service seen from the core.
// The service assigns physical character offsets on its own terms, so
// callers must insert text first and re-fetch paragraph ranges before
// issuing range-keyed formatting mutations; locally predicted offsets
// are not guaranteed to match the service's paragraph segmentation.
type DocumentWriter interface {
	// Create makes an empty document and returns its identifier.
	Create(ctx context.Context, title string) (string, error)

	// InsertText submits one batch of raw text insertions.
	// The batch either completes or fails as reported by the service;
	// no partial-state cleanup is attempted here or by callers.
	InsertText(ctx context.Context, documentID string, ops []domain.InsertionOp) error

	// ParagraphRanges re-fetches the document and returns its
	// paragraph-level content elements in order, each with the
	// physical range and literal run content the service assigned.
	ParagraphRanges(ctx context.Context, documentID string) ([]domain.ParagraphRange, error)

	// ApplyFormatting submits one batch of formatting mutations.
	ApplyFormatting(ctx context.Context, documentID string, ops []domain.FormattingOp) error

	// DocumentURL returns a human-readable link for a document ID.
	DocumentURL(documentID string) string
}
