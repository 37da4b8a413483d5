// Package memory provides an in-memory DocumentWriter that simulates the
// remote document service. It backs the --dry-run mode and the service
// tests: insertions build up a text body, paragraph ranges are derived
// the way the remote segments inserted lines, and formatting batches are
// recorded for inspection.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// ErrDocumentNotFound is returned for unknown document IDs.
var ErrDocumentNotFound = errors.New("document not found")

// Writer is an in-memory implementation of driven.DocumentWriter.
type Writer struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	title      string
	content    string
	formatting []domain.FormattingOp
}

// NewWriter creates a new in-memory document writer.
func NewWriter() *Writer {
	return &Writer{
		docs: make(map[string]*document),
	}
}

// Create makes a new empty document and returns its identifier.
func (w *Writer) Create(_ context.Context, title string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := uuid.New().String()
	w.docs[id] = &document{title: title}
	return id, nil
}

// InsertText applies an insertion batch. Like the real service it only
// accepts appends at the current end of the body, which makes it reject
// any plan whose offsets drift from the strictly increasing sequence.
func (w *Writer) InsertText(_ context.Context, documentID string, ops []domain.InsertionOp) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, ok := w.docs[documentID]
	if !ok {
		return ErrDocumentNotFound
	}

	for _, op := range ops {
		want := int64(len(doc.content)) + 1
		if op.Offset != want {
			return fmt.Errorf("insert index %d out of sequence (want %d)", op.Offset, want)
		}
		doc.content += op.Text
	}

	return nil
}

// ParagraphRanges reports the document's paragraphs. The remote service
// keeps a final empty paragraph after the last inserted newline, so the
// listing has one more entry than the inserted line count; callers
// truncate on reconciliation.
func (w *Writer) ParagraphRanges(_ context.Context, documentID string) ([]domain.ParagraphRange, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[documentID]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	body := doc.content + "\n"
	var ranges []domain.ParagraphRange
	start := int64(1)

	for _, para := range strings.SplitAfter(body, "\n") {
		if para == "" {
			continue
		}
		end := start + int64(len(para))
		ranges = append(ranges, domain.ParagraphRange{
			Start: start,
			End:   end,
			Text:  para,
		})
		start = end
	}

	return ranges, nil
}

// ApplyFormatting records a formatting batch after bounds-checking every
// range against the current body.
func (w *Writer) ApplyFormatting(_ context.Context, documentID string, ops []domain.FormattingOp) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, ok := w.docs[documentID]
	if !ok {
		return ErrDocumentNotFound
	}

	limit := int64(len(doc.content)) + 2 // body plus the final empty paragraph
	for _, op := range ops {
		if op.Start < 1 || op.End <= op.Start || op.End > limit {
			return fmt.Errorf("range [%d, %d) out of bounds for %s op", op.Start, op.End, op.Kind)
		}
	}

	doc.formatting = append(doc.formatting, ops...)
	return nil
}

// DocumentURL returns a memory:// link for a document ID.
func (w *Writer) DocumentURL(documentID string) string {
	return "memory://documents/" + documentID
}

// Content returns the raw text body of a document.
func (w *Writer) Content(documentID string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[documentID]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Title returns the title a document was created with.
func (w *Writer) Title(documentID string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[documentID]
	if !ok {
		return "", false
	}
	return doc.title, true
}

// Formatting returns the formatting ops recorded for a document.
func (w *Writer) Formatting(documentID string) []domain.FormattingOp {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[documentID]
	if !ok {
		return nil
	}
	out := make([]domain.FormattingOp, len(doc.formatting))
	copy(out, doc.formatting)
	return out
}
