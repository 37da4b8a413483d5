package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

func TestReconcile_PositionalJoin(t *testing.T) {
	blocks := []domain.Block{
		{Kind: domain.BlockHeading1, Text: "Title"},
		{Kind: domain.BlockBullet, Text: "item"},
	}
	paragraphs := []domain.ParagraphRange{
		{Start: 1, End: 7, Text: "Title\n"},
		{Start: 7, End: 12, Text: "item\n"},
	}

	reconciled := Reconcile(blocks, paragraphs)
	require.Len(t, reconciled, 2)

	assert.Equal(t, blocks[0], reconciled[0].Block)
	assert.Equal(t, int64(1), reconciled[0].Start)
	assert.Equal(t, int64(7), reconciled[0].End)
	assert.Equal(t, "Title\n", reconciled[0].Text)

	assert.Equal(t, blocks[1], reconciled[1].Block)
	assert.Equal(t, int64(7), reconciled[1].Start)
}

func TestReconcile_MoreBlocksThanParagraphs(t *testing.T) {
	blocks := make([]domain.Block, 5)
	for i := range blocks {
		blocks[i] = domain.Block{Kind: domain.BlockParagraph, Text: "p"}
	}
	paragraphs := []domain.ParagraphRange{
		{Start: 1, End: 3, Text: "p\n"},
		{Start: 3, End: 5, Text: "p\n"},
		{Start: 5, End: 7, Text: "p\n"},
	}

	// 5 local blocks and 3 remote ranges give exactly 3 pairs, in order.
	reconciled := Reconcile(blocks, paragraphs)
	require.Len(t, reconciled, 3)
	assert.Equal(t, int64(1), reconciled[0].Start)
	assert.Equal(t, int64(5), reconciled[2].Start)
}

func TestReconcile_MoreParagraphsThanBlocks(t *testing.T) {
	blocks := []domain.Block{{Kind: domain.BlockParagraph, Text: "only"}}
	paragraphs := []domain.ParagraphRange{
		{Start: 1, End: 6, Text: "only\n"},
		{Start: 6, End: 7, Text: "\n"},
	}

	reconciled := Reconcile(blocks, paragraphs)
	require.Len(t, reconciled, 1)
	assert.Equal(t, "only", reconciled[0].Block.Text)
}

func TestReconcile_Empty(t *testing.T) {
	assert.Empty(t, Reconcile(nil, nil))
	assert.Empty(t, Reconcile([]domain.Block{{Kind: domain.BlockBlank}}, nil))
}
