package driving

import (
	"context"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// ConverterService turns markdown text into a styled remote document.
type ConverterService interface {
	// Convert runs the full two-pass construction protocol: create the
	// document, insert raw text, re-fetch the remote paragraph ranges,
	// then apply formatting keyed to those ranges.
	//
	// Any remote-call failure surfaces once, wrapped; a partially
	// populated document may be left behind on the service.
	Convert(ctx context.Context, markdown string, opts domain.ConvertOptions) (*domain.ConversionResult, error)
}
