package requests

import (
	"context"

	"docket/internal/ledger"
)

// Pair is one outstanding submission: a row and one of its document types.
type Pair struct {
	Row     Row
	DocType string
}

// Outstanding returns the pairs Run would submit for these rows, in row
// order, without submitting or recording anything.
func Outstanding(ctx context.Context, l *ledger.Ledger, rows []Row) ([]Pair, error) {
	var pairs []Pair
	for _, row := range rows {
		for _, docType := range row.DocTypes {
			requested, err := l.HasRequested(ctx, row.Name, docType)
			if err != nil {
				return nil, err
			}
			if requested {
				continue
			}
			pairs = append(pairs, Pair{Row: row, DocType: docType})
		}
	}
	return pairs, nil
}
