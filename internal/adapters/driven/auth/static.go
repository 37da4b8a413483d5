package auth

import (
	"context"

	"github.com/custodia-labs/docforge-cli/internal/core/ports/driven"
)

// Ensure StaticProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticProvider)(nil)

// StaticProvider returns a fixed access token. Useful for tests and for
// environments that manage tokens externally.
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider that always returns token.
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

// GetToken returns the fixed token.
func (p *StaticProvider) GetToken(_ context.Context) (string, error) {
	return p.token, nil
}

// IsAuthenticated returns true when a non-empty token is held.
func (p *StaticProvider) IsAuthenticated() bool {
	return p.token != ""
}
