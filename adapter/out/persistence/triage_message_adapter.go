// Package persistence provides database adapters implementing outbound ports.
package persistence

import (
	"context"
	"fmt"

	"triage_server/core/domain"

	"github.com/jmoiron/sqlx"
)

// MessageAdapter implements out.MessageRepository over the SQLite
// append log.
type MessageAdapter struct {
	db *sqlx.DB
}

// NewMessageAdapter creates a new MessageAdapter.
func NewMessageAdapter(db *sqlx.DB) *MessageAdapter {
	return &MessageAdapter{db: db}
}

// messageRow represents the database row.
type messageRow struct {
	ID             int64  `db:"id"`
	Mensagem       string `db:"mensagem"`
	Categoria      string `db:"categoria"`
	Explicacao     string `db:"explicacao"`
	SolucaoCliente string `db:"solucao_cliente"`
	SolucaoTecnica string `db:"solucao_tecnica"`
	Confianca      string `db:"confianca"`
}

func (r *messageRow) toEntity() domain.StoredMessage {
	return domain.StoredMessage{
		ID:             r.ID,
		Mensagem:       r.Mensagem,
		Categoria:      domain.Category(r.Categoria),
		Explicacao:     r.Explicacao,
		SolucaoCliente: r.SolucaoCliente,
		SolucaoTecnica: r.SolucaoTecnica,
		Confianca:      domain.Confidence(r.Confianca),
	}
}

// Insert appends one classification result. Each insert commits on its
// own; the caller never consumes the assigned identifier.
func (a *MessageAdapter) Insert(ctx context.Context, result *domain.ClassificationResult) error {
	query := `
		INSERT INTO messages (mensagem, categoria, explicacao, solucao_cliente, solucao_tecnica, confianca)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := a.db.ExecContext(ctx, query,
		result.Mensagem, string(result.Categoria), result.Explicacao,
		result.SolucaoCliente, result.SolucaoTecnica, string(result.Confianca),
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// ListAll retrieves every stored message in storage-assigned order.
func (a *MessageAdapter) ListAll(ctx context.Context) ([]domain.StoredMessage, error) {
	var rows []messageRow
	query := `
		SELECT id, mensagem, categoria, explicacao, solucao_cliente, solucao_tecnica, confianca
		FROM messages ORDER BY id`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]domain.StoredMessage, len(rows))
	for i, row := range rows {
		messages[i] = row.toEntity()
	}
	return messages, nil
}
