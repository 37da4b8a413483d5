package services

import (
	"strings"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

// ExtractTitle returns the text of the first depth-1 heading in the
// markdown, or domain.FallbackTitle when none exists. Depth is checked
// explicitly so `##` and `###` headings never match even though the
// heading pattern is a prefix-superset.
func ExtractTitle(text string) string {
	for _, line := range splitLines(text) {
		m := headingRE.FindStringSubmatch(strings.TrimSpace(line))
		if m != nil && len(m[1]) == 1 {
			return strings.TrimSpace(m[2])
		}
	}
	return domain.FallbackTitle
}
