package mcp

import (
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Converter turns markdown into a styled remote document.
	Converter driving.ConverterService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Converter == nil {
		return ErrMissingConverterService
	}
	return nil
}
