package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

func TestPlanInsertions_Offsets(t *testing.T) {
	blocks := []domain.Block{
		{Kind: domain.BlockHeading1, Text: "Title"},  // len 5 + newline
		{Kind: domain.BlockBlank},                    // bare newline
		{Kind: domain.BlockBullet, Text: "item one"}, // len 8 + newline
	}

	ops := PlanInsertions(blocks)
	require.Len(t, ops, 3)

	// offset(i) = 1 + sum(len(text_j)+1 for j < i)
	assert.Equal(t, int64(1), ops[0].Offset)
	assert.Equal(t, "Title\n", ops[0].Text)
	assert.Equal(t, int64(7), ops[1].Offset)
	assert.Equal(t, "\n", ops[1].Text)
	assert.Equal(t, int64(8), ops[2].Offset)
	assert.Equal(t, "item one\n", ops[2].Text)
}

func TestPlanInsertions_NoBlockSkipped(t *testing.T) {
	blocks := ParseMarkdown("# A\n\n\n- b\n")
	ops := PlanInsertions(blocks)
	assert.Len(t, ops, len(blocks))
}

func TestPlanInsertions_MonotonicNonOverlapping(t *testing.T) {
	blocks := ParseMarkdown("# Title\n\n- a\n  - nested\n- [ ] task\nplain text\n")
	ops := PlanInsertions(blocks)

	for i := 1; i < len(ops); i++ {
		prev := ops[i-1]
		assert.Equal(t, prev.Offset+int64(len(prev.Text)), ops[i].Offset,
			"op %d must start where op %d ends", i, i-1)
	}
}

func TestPlanInsertions_Empty(t *testing.T) {
	assert.Empty(t, PlanInsertions(nil))
}
