package out

import (
	"context"

	"triage_server/core/domain"
)

// ZeroShotClassifier scores a text against a set of candidate labels.
//
// Implementations must return one entry per candidate label, sorted by
// descending score. The ordering is part of the contract and is enforced
// at the adapter boundary so callers never re-sort.
type ZeroShotClassifier interface {
	Rank(ctx context.Context, text string, candidates []string) ([]domain.RankedLabel, error)
}
