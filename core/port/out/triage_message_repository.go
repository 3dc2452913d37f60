package out

import (
	"context"

	"triage_server/core/domain"
)

// MessageRepository is the append-only store for classification results.
// Inserts are independently committed; no updates or deletes exist.
type MessageRepository interface {
	Insert(ctx context.Context, result *domain.ClassificationResult) error
	ListAll(ctx context.Context) ([]domain.StoredMessage, error)
}
