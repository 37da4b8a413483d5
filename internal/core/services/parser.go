package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// Line classification patterns. Checkbox must be tried before bullet:
// checkbox syntax is a strict subset of bullet syntax.
var (
	headingRE  = regexp.MustCompile(`^(#{1,3})\s+(.*)`)
	checkboxRE = regexp.MustCompile(`^\s*[-*]\s+\[ \]\s+(.+)`)
	bulletRE   = regexp.MustCompile(`^\s*[-*]\s+(.+)`)
)

// ParseMarkdown classifies each input line into a Block. It is total:
// no input fails, and every line (blank lines included) produces exactly
// one block, so len(blocks) always equals the line count. Range
// reconciliation depends on that 1:1 correspondence.
func ParseMarkdown(text string) []domain.Block {
	lines := splitLines(text)
	blocks := make([]domain.Block, 0, len(lines))

	for _, raw := range lines {
		stripped := strings.TrimSpace(raw)

		// A lone `---` is a separator, not a heading or paragraph.
		if stripped == "" || stripped == "---" {
			blocks = append(blocks, domain.Block{Kind: domain.BlockBlank})
			continue
		}

		if m := headingRE.FindStringSubmatch(stripped); m != nil {
			blocks = append(blocks, domain.Block{
				Kind: headingKind(len(m[1])),
				Text: strings.TrimSpace(m[2]),
			})
			continue
		}

		if m := checkboxRE.FindStringSubmatch(raw); m != nil {
			blocks = append(blocks, domain.Block{
				Kind:  domain.BlockCheckbox,
				Text:  strings.TrimSpace(m[1]),
				Level: indentLevel(raw),
			})
			continue
		}

		if m := bulletRE.FindStringSubmatch(raw); m != nil {
			blocks = append(blocks, domain.Block{
				Kind:  domain.BlockBullet,
				Text:  strings.TrimSpace(m[1]),
				Level: indentLevel(raw),
			})
			continue
		}

		blocks = append(blocks, domain.Block{
			Kind: domain.BlockParagraph,
			Text: stripped,
		})
	}

	return blocks
}

// splitLines splits on newlines without producing a phantom empty line
// for a trailing newline, so the one-block-per-line invariant holds for
// texts that end with "\n".
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func headingKind(depth int) domain.BlockKind {
	switch depth {
	case 1:
		return domain.BlockHeading1
	case 2:
		return domain.BlockHeading2
	default:
		return domain.BlockHeading3
	}
}

// indentLevel derives nesting depth from leading spaces (2 spaces = 1 level).
func indentLevel(raw string) int {
	leading := len(raw) - len(strings.TrimLeft(raw, " "))
	return leading / 2
}
