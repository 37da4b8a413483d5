package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Markdown string `json:"markdown" jsonschema:"the markdown text to convert"`
	Title    string `json:"title,omitempty" jsonschema:"document title (defaults to the first # heading)"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	DocumentID    string `json:"document_id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Blocks        int    `json:"blocks"`
	FormattingOps int    `json:"formatting_ops"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_markdown",
		Description: "Convert markdown text into a styled Google Doc and return its URL",
	}, s.handleConvert)
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	res, err := s.ports.Converter.Convert(ctx, input.Markdown, domain.ConvertOptions{
		Title: input.Title,
	})
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	return nil, ConvertOutput{
		DocumentID:    res.DocumentID,
		Title:         res.Title,
		URL:           res.URL,
		Blocks:        res.Blocks,
		FormattingOps: res.FormattingOps,
	}, nil
}
