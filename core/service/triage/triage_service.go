// Package triage orchestrates validation, classification and persistence
// for incoming customer messages.
package triage

import (
	"context"
	"strings"

	"triage_server/core/domain"
	"triage_server/core/port/out"
	"triage_server/pkg/apperr"
	"triage_server/pkg/logger"
)

// MessagePolicy decides the final category for a message. It never fails;
// internal classification errors surface as the erro confidence bucket.
type MessagePolicy interface {
	Classify(ctx context.Context, text string) *domain.ClassificationResult
}

// Service implements the inbound TriageService port.
type Service struct {
	policy   MessagePolicy
	messages out.MessageRepository
}

// NewService creates a triage Service.
func NewService(policy MessagePolicy, messages out.MessageRepository) *Service {
	return &Service{policy: policy, messages: messages}
}

// Classify rejects blank input, classifies the message and appends the
// result to the store. The result is returned even when classification
// fell back internally; only validation and storage failures error out.
func (s *Service) Classify(ctx context.Context, mensagem string) (*domain.ClassificationResult, error) {
	if strings.TrimSpace(mensagem) == "" {
		return nil, apperr.Validation("A mensagem não pode ser vazia.")
	}

	result := s.policy.Classify(ctx, mensagem)

	if err := s.messages.Insert(ctx, result); err != nil {
		return nil, apperr.DatabaseError("insert message", err)
	}

	logger.WithFields(map[string]any{
		"categoria": result.Categoria,
		"confianca": result.Confianca,
	}).Info("Message classified")

	return result, nil
}

// ListMessages returns every stored classification in storage order.
func (s *Service) ListMessages(ctx context.Context) ([]domain.StoredMessage, error) {
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		return nil, apperr.DatabaseError("list messages", err)
	}
	return messages, nil
}
