package cli

import (
	"context"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driving"
)

// mockConverterService is a mock implementation of driving.ConverterService.
type mockConverterService struct {
	result   *domain.ConversionResult
	err      error
	gotText  string
	gotTitle string
	calls    int
}

func (m *mockConverterService) Convert(
	_ context.Context,
	markdown string,
	opts domain.ConvertOptions,
) (*domain.ConversionResult, error) {
	m.calls++
	m.gotText = markdown
	m.gotTitle = opts.Title
	if m.result == nil && m.err == nil {
		return &domain.ConversionResult{
			DocumentID: "mock-doc",
			Title:      "Mock",
			URL:        "memory://documents/mock-doc",
		}, nil
	}
	return m.result, m.err
}

// withConverter swaps in a converter service and returns a restore func.
func withConverter(svc driving.ConverterService) func() {
	old := converterService
	converterService = svc
	return func() { converterService = old }
}

// withConfigStore swaps in a config store and returns a restore func.
func withConfigStore(store driven.ConfigStore) func() {
	old := configStore
	configStore = store
	return func() { configStore = old }
}

// resetConvertFlags returns the convert command's flag variables to their
// defaults. Flag state persists across Execute calls within a test binary.
func resetConvertFlags() {
	convertTitle = ""
	convertDryRun = false
	convertWatch = false
	convertSample = false
}
