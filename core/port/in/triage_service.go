package in

import (
	"context"

	"triage_server/core/domain"
)

// TriageService is the inbound port for message triage.
type TriageService interface {
	// Classify validates, classifies and persists a message. Blank input
	// is rejected with a validation error before classification runs.
	Classify(ctx context.Context, mensagem string) (*domain.ClassificationResult, error)

	// ListMessages returns every stored classification in storage order.
	ListMessages(ctx context.Context) ([]domain.StoredMessage, error)
}
