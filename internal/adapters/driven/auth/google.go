// Package auth provides token providers for the Google Docs API.
//
// The default provider resolves Application Default Credentials or a
// service-account JSON file; interactive OAuth flows are out of scope.
package auth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	docs "google.golang.org/api/docs/v1"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driven"
)

// Ensure DefaultProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*DefaultProvider)(nil)

// DefaultProvider provides access tokens from Google Application Default
// Credentials, or from an explicit credentials JSON file when one is
// configured. Token refresh is handled by the underlying credential
// source.
type DefaultProvider struct {
	ts oauth2.TokenSource
}

// NewDefaultProvider resolves credentials scoped to the Docs API.
// An empty credentialsFile falls back to Application Default Credentials
// (GOOGLE_APPLICATION_CREDENTIALS, gcloud auth, or metadata server).
// Failure here is fatal for a conversion: no document is created.
func NewDefaultProvider(ctx context.Context, credentialsFile string) (*DefaultProvider, error) {
	var (
		creds *google.Credentials
		err   error
	)

	if credentialsFile != "" {
		data, readErr := os.ReadFile(credentialsFile)
		if readErr != nil {
			return nil, fmt.Errorf("%w: read credentials file: %v", domain.ErrAuthRequired, readErr)
		}
		creds, err = google.CredentialsFromJSON(ctx, data, docs.DocumentsScope)
	} else {
		creds, err = google.FindDefaultCredentials(ctx, docs.DocumentsScope)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthRequired, err)
	}

	return &DefaultProvider{ts: creds.TokenSource}, nil
}

// GetToken returns a valid access token.
func (p *DefaultProvider) GetToken(_ context.Context) (string, error) {
	tok, err := p.ts.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthInvalid, err)
	}
	return tok.AccessToken, nil
}

// IsAuthenticated returns true if a credential source was resolved.
func (p *DefaultProvider) IsAuthenticated() bool {
	return p.ts != nil
}
