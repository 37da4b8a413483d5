package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

func TestParseMarkdown_OneBlockPerLine(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
	}{
		{"empty input", "", 0},
		{"single newline", "\n", 1},
		{"trailing newline", "# Title\n- item\n", 2},
		{"no trailing newline", "# Title\n- item", 2},
		{"blank lines kept", "a\n\n\nb\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := ParseMarkdown(tt.text)
			assert.Len(t, blocks, tt.lines)
		})
	}
}

func TestParseMarkdown_Classification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want domain.Block
	}{
		{
			name: "heading 1",
			line: "# Title",
			want: domain.Block{Kind: domain.BlockHeading1, Text: "Title"},
		},
		{
			name: "heading 2",
			line: "## Sub",
			want: domain.Block{Kind: domain.BlockHeading2, Text: "Sub"},
		},
		{
			name: "heading 3",
			line: "### Deep",
			want: domain.Block{Kind: domain.BlockHeading3, Text: "Deep"},
		},
		{
			name: "top-level bullet",
			line: "- item",
			want: domain.Block{Kind: domain.BlockBullet, Text: "item", Level: 0},
		},
		{
			name: "star bullet",
			line: "* item",
			want: domain.Block{Kind: domain.BlockBullet, Text: "item", Level: 0},
		},
		{
			name: "nested bullet",
			line: "    * deep item",
			want: domain.Block{Kind: domain.BlockBullet, Text: "deep item", Level: 2},
		},
		{
			name: "checkbox",
			line: "- [ ] task one",
			want: domain.Block{Kind: domain.BlockCheckbox, Text: "task one", Level: 0},
		},
		{
			name: "indented checkbox",
			line: "  - [ ] task one",
			want: domain.Block{Kind: domain.BlockCheckbox, Text: "task one", Level: 1},
		},
		{
			name: "blank line",
			line: "",
			want: domain.Block{Kind: domain.BlockBlank},
		},
		{
			name: "whitespace-only line",
			line: "   ",
			want: domain.Block{Kind: domain.BlockBlank},
		},
		{
			name: "horizontal rule is blank",
			line: "---",
			want: domain.Block{Kind: domain.BlockBlank},
		},
		{
			name: "plain paragraph",
			line: "Duration: 45 minutes",
			want: domain.Block{Kind: domain.BlockParagraph, Text: "Duration: 45 minutes"},
		},
		{
			name: "paragraph trimmed",
			line: "  some text  ",
			want: domain.Block{Kind: domain.BlockParagraph, Text: "some text"},
		},
		{
			name: "four hashes is a paragraph",
			line: "#### Too deep",
			want: domain.Block{Kind: domain.BlockParagraph, Text: "#### Too deep"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := ParseMarkdown(tt.line)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0])
		})
	}
}

func TestParseMarkdown_CheckboxBeforeBullet(t *testing.T) {
	// Checkbox syntax is a strict subset of bullet syntax; the checkbox
	// classification must win.
	blocks := ParseMarkdown("- [ ] ship it")
	require.Len(t, blocks, 1)
	assert.Equal(t, domain.BlockCheckbox, blocks[0].Kind)
	assert.Equal(t, "ship it", blocks[0].Text)
}

func TestParseMarkdown_MarkersStripped(t *testing.T) {
	blocks := ParseMarkdown("## Agenda\n  - nested\n- [ ] task\n")
	require.Len(t, blocks, 3)
	for _, b := range blocks {
		assert.NotContains(t, b.Text, "#")
		assert.NotContains(t, b.Text, "- ")
		assert.NotContains(t, b.Text, "[ ]")
		assert.Equal(t, strings.TrimSpace(b.Text), b.Text)
	}
}

func TestParseMarkdown_Deterministic(t *testing.T) {
	text := "# Title\n\n- a\n  - b\n- [ ] c\nplain\n---\n"
	first := ParseMarkdown(text)
	second := ParseMarkdown(text)
	assert.Equal(t, first, second)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "first h1",
			text: "# Product Team Sync\n## Attendees\n",
			want: "Product Team Sync",
		},
		{
			name: "skips deeper headings",
			text: "## Not title\n# Real Title\n",
			want: "Real Title",
		},
		{
			name: "no headings",
			text: "no headings here\n",
			want: "Untitled Document",
		},
		{
			name: "empty input",
			text: "",
			want: "Untitled Document",
		},
		{
			name: "indented h1",
			text: "   # Indented\n",
			want: "Indented",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(tt.text))
		})
	}
}
