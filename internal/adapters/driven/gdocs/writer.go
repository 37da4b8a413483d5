package gdocs

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	docs "google.golang.org/api/docs/v1"
	"google.golang.org/api/option"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// documentURLFormat is the canonical edit link for a created document.
const documentURLFormat = "https://docs.google.com/document/d/%s/edit"

// Writer implements driven.DocumentWriter against the Google Docs API.
type Writer struct {
	svc     *docs.Service
	limiter *RateLimiter
}

// NewWriter creates a Docs API writer using the provided TokenSource.
func NewWriter(ctx context.Context, ts oauth2.TokenSource) (*Writer, error) {
	return NewWriterWithRateLimit(ctx, ts, DefaultRateLimit)
}

// NewWriterWithRateLimit creates a Docs API writer with a custom rate limit.
func NewWriterWithRateLimit(ctx context.Context, ts oauth2.TokenSource, cfg RateLimitConfig) (*Writer, error) {
	svc, err := docs.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create docs service: %w", err)
	}

	return &Writer{
		svc:     svc,
		limiter: NewRateLimiter(cfg),
	}, nil
}

// Create makes an empty document and returns its identifier.
func (w *Writer) Create(ctx context.Context, title string) (string, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return "", err
	}

	doc, err := w.svc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", w.remoteErr("create document", err)
	}

	return doc.DocumentId, nil
}

// InsertText submits the insertion batch.
func (w *Writer) InsertText(ctx context.Context, documentID string, ops []domain.InsertionOp) error {
	if len(ops) == 0 {
		return nil
	}
	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := w.svc.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: insertRequests(ops),
	}).Context(ctx).Do()
	if err != nil {
		return w.remoteErr("insert text", err)
	}

	return nil
}

// ParagraphRanges fetches the document and reports its paragraph-level
// content elements in order. Each paragraph's literal text is rebuilt
// from its text runs; the indices are the ones the service assigned
// after reflowing the insertions.
func (w *Writer) ParagraphRanges(ctx context.Context, documentID string) ([]domain.ParagraphRange, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	doc, err := w.svc.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return nil, w.remoteErr("get document", err)
	}

	var ranges []domain.ParagraphRange
	if doc.Body == nil {
		return ranges, nil
	}

	for _, elem := range doc.Body.Content {
		if elem.Paragraph == nil {
			continue
		}

		var text strings.Builder
		for _, pe := range elem.Paragraph.Elements {
			if pe.TextRun != nil {
				text.WriteString(pe.TextRun.Content)
			}
		}

		ranges = append(ranges, domain.ParagraphRange{
			Start: elem.StartIndex,
			End:   elem.EndIndex,
			Text:  text.String(),
		})
	}

	return ranges, nil
}

// ApplyFormatting submits the formatting batch.
func (w *Writer) ApplyFormatting(ctx context.Context, documentID string, ops []domain.FormattingOp) error {
	if len(ops) == 0 {
		return nil
	}
	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := w.svc.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: formattingRequests(ops),
	}).Context(ctx).Do()
	if err != nil {
		return w.remoteErr("apply formatting", err)
	}

	return nil
}

// DocumentURL returns the edit link for a document ID.
func (w *Writer) DocumentURL(documentID string) string {
	return fmt.Sprintf(documentURLFormat, documentID)
}

// remoteErr maps an API failure, recording 429s so later calls back off.
func (w *Writer) remoteErr(op string, err error) error {
	if IsRateLimited(err) {
		w.limiter.RecordRateLimitError(0)
	}
	return fmt.Errorf("%s: %w", op, WrapError(err))
}
