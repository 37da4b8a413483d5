package mcp

import (
	"context"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// mockConverterService is a mock implementation of driving.ConverterService.
type mockConverterService struct {
	result   *domain.ConversionResult
	err      error
	gotText  string
	gotTitle string
}

func (m *mockConverterService) Convert(
	_ context.Context,
	markdown string,
	opts domain.ConvertOptions,
) (*domain.ConversionResult, error) {
	m.gotText = markdown
	m.gotTitle = opts.Title
	return m.result, m.err
}
