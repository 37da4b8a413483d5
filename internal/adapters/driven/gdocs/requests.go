package gdocs

import (
	docs "google.golang.org/api/docs/v1"

	"github.com/custodia-labs/docforge-cli/internal/core/domain"
)

const dimensionUnitPt = "PT"

// insertRequests maps insertion ops to batchUpdate requests.
func insertRequests(ops []domain.InsertionOp) []*docs.Request {
	reqs := make([]*docs.Request, 0, len(ops))
	for _, op := range ops {
		reqs = append(reqs, &docs.Request{
			InsertText: &docs.InsertTextRequest{
				Location: &docs.Location{Index: op.Offset},
				Text:     op.Text,
			},
		})
	}
	return reqs
}

// formattingRequests maps formatting ops to batchUpdate requests,
// preserving op order within the batch.
func formattingRequests(ops []domain.FormattingOp) []*docs.Request {
	reqs := make([]*docs.Request, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case domain.OpParagraphStyle:
			reqs = append(reqs, paragraphStyleRequest(op))
		case domain.OpCreateBullets:
			reqs = append(reqs, &docs.Request{
				CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
					Range:        opRange(op),
					BulletPreset: op.BulletPreset,
				},
			})
		case domain.OpDeleteBullets:
			reqs = append(reqs, &docs.Request{
				DeleteParagraphBullets: &docs.DeleteParagraphBulletsRequest{
					Range: opRange(op),
				},
			})
		case domain.OpTextStyle:
			reqs = append(reqs, textStyleRequest(op))
		}
	}
	return reqs
}

func paragraphStyleRequest(op domain.FormattingOp) *docs.Request {
	style := &docs.ParagraphStyle{
		IndentFirstLine: dimension(op.IndentFirstLinePt),
		IndentStart:     dimension(op.IndentStartPt),
	}
	fields := "indentFirstLine,indentStart"
	if op.NamedStyle != "" {
		style.NamedStyleType = op.NamedStyle
		fields = "namedStyleType," + fields
	}

	return &docs.Request{
		UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          opRange(op),
			ParagraphStyle: style,
			Fields:         fields,
		},
	}
}

func textStyleRequest(op domain.FormattingOp) *docs.Request {
	style := &docs.TextStyle{
		ForegroundColor: &docs.OptionalColor{
			Color: &docs.Color{
				RgbColor: &docs.RgbColor{
					Red:   op.Color.Red,
					Green: op.Color.Green,
					Blue:  op.Color.Blue,
					// Zero components must still reach the wire.
					ForceSendFields: []string{"Red", "Green", "Blue"},
				},
			},
		},
	}

	var fields string
	switch {
	case op.Bold && op.Italic:
		style.Bold = true
		style.Italic = true
		fields = "bold,italic,foregroundColor"
	case op.Italic:
		style.Italic = true
		fields = "italic,foregroundColor"
	default:
		style.Bold = op.Bold
		fields = "bold,foregroundColor"
	}

	return &docs.Request{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     opRange(op),
			TextStyle: style,
			Fields:    fields,
		},
	}
}

func opRange(op domain.FormattingOp) *docs.Range {
	return &docs.Range{
		StartIndex: op.Start,
		EndIndex:   op.End,
	}
}

// dimension builds a PT dimension that serialises even at zero magnitude,
// which heading ops rely on to reset indentation.
func dimension(magnitudePt float64) *docs.Dimension {
	return &docs.Dimension{
		Magnitude:       magnitudePt,
		Unit:            dimensionUnitPt,
		ForceSendFields: []string{"Magnitude"},
	}
}
