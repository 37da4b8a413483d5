package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docforge-cli/internal/logger"
)

// Ensure ConverterService implements the interface.
var _ driving.ConverterService = (*ConverterService)(nil)

// ErrNoWriter is returned when no document writer is configured.
var ErrNoWriter = errors.New("document writer not configured")

// ConverterService runs the two-pass document construction protocol
// against a DocumentWriter. It is fully sequential: each remote call
// blocks until its response, there are no retries, and a failure at any
// step aborts the run without cleaning up a partially built document.
type ConverterService struct {
	writer driven.DocumentWriter
}

// NewConverterService creates a new converter service.
func NewConverterService(writer driven.DocumentWriter) *ConverterService {
	return &ConverterService{writer: writer}
}

// Convert implements driving.ConverterService.
func (s *ConverterService) Convert(
	ctx context.Context, markdown string, opts domain.ConvertOptions,
) (*domain.ConversionResult, error) {
	if s.writer == nil {
		return nil, ErrNoWriter
	}

	title := opts.Title
	if title == "" {
		title = ExtractTitle(markdown)
	}

	logger.Section("convert")
	logger.Info("creating document: %s", title)

	documentID, err := s.writer.Create(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentCreate, err)
	}
	logger.Info("document URL: %s", s.writer.DocumentURL(documentID))

	blocks := ParseMarkdown(markdown)
	insertions := PlanInsertions(blocks)
	logger.Debug("parsed %d blocks, planned %d insertions", len(blocks), len(insertions))

	if err := s.writer.InsertText(ctx, documentID, insertions); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentInsert, err)
	}

	// The service reflows indices on insert, so re-fetch to discover
	// where each paragraph actually landed before styling anything.
	paragraphs, err := s.writer.ParagraphRanges(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch document structure: %v", domain.ErrFormatApply, err)
	}

	reconciled := Reconcile(blocks, paragraphs)
	if len(reconciled) < len(blocks) {
		logger.Warn("remote reported %d paragraphs for %d blocks; trailing blocks stay unformatted",
			len(paragraphs), len(blocks))
	}

	formatting := PlanFormatting(reconciled)
	if len(formatting) > 0 {
		logger.Info("applying %d formatting updates", len(formatting))
		if err := s.writer.ApplyFormatting(ctx, documentID, formatting); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrFormatApply, err)
		}
	} else {
		logger.Debug("formatting plan empty, skipping batch")
	}

	return &domain.ConversionResult{
		DocumentID:    documentID,
		Title:         title,
		URL:           s.writer.DocumentURL(documentID),
		Blocks:        len(blocks),
		FormattingOps: len(formatting),
	}, nil
}
