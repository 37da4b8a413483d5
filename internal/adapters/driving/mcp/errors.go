// Package mcp provides an MCP (Model Context Protocol) server adapter
// for docforge. It lets AI assistants convert markdown into styled
// Google Docs through the same converter the CLI uses.
package mcp

import "errors"

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("mcp: converter service is required")
