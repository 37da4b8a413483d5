package auth

import (
	"context"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driven"
)

// Ensure NullProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*NullProvider)(nil)

// NullProvider never authenticates. It stands in where a TokenProvider
// is required but no credentials exist, failing fast instead of at the
// first remote call.
type NullProvider struct{}

// NewNullProvider creates a provider with no credentials.
func NewNullProvider() *NullProvider {
	return &NullProvider{}
}

// GetToken always fails.
func (p *NullProvider) GetToken(_ context.Context) (string, error) {
	return "", domain.ErrAuthRequired
}

// IsAuthenticated always returns false.
func (p *NullProvider) IsAuthenticated() bool {
	return false
}
