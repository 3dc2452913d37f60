package persistence

import (
	"context"
	"testing"

	"triage_server/core/domain"
	"triage_server/infra/database"
)

func newTestAdapter(t *testing.T) *MessageAdapter {
	t.Helper()
	db, err := database.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewMessageAdapter(db)
}

func testResult(mensagem string) *domain.ClassificationResult {
	meta := domain.MetaFor(domain.CategorySuporte)
	return &domain.ClassificationResult{
		Mensagem:       mensagem,
		Categoria:      domain.CategorySuporte,
		Explicacao:     "Classificação semântica (IA) com score: 0.75",
		SolucaoCliente: meta.SolucaoCliente,
		SolucaoTecnica: meta.SolucaoTecnica,
		Confianca:      domain.ConfidenceAlta,
	}
}

func TestInsertAssignsStrictlyIncreasingIDs(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	for _, m := range []string{"primeira", "segunda", "terceira"} {
		if err := adapter.Insert(ctx, testResult(m)); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	messages, err := adapter.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(messages))
	}

	var prev int64
	for i, m := range messages {
		if m.ID <= prev {
			t.Errorf("row %d: id %d not strictly greater than %d", i, m.ID, prev)
		}
		prev = m.ID
	}

	if messages[0].Mensagem != "primeira" || messages[2].Mensagem != "terceira" {
		t.Error("rows not returned in insertion order")
	}
}

func TestInsertRoundTripsAllFields(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	result := testResult("O boleto não chegou")
	if err := adapter.Insert(ctx, result); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	messages, err := adapter.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 row, got %d", len(messages))
	}

	got := messages[0]
	if got.Mensagem != result.Mensagem {
		t.Errorf("mensagem: expected %q, got %q", result.Mensagem, got.Mensagem)
	}
	if got.Categoria != result.Categoria {
		t.Errorf("categoria: expected %q, got %q", result.Categoria, got.Categoria)
	}
	if got.Explicacao != result.Explicacao {
		t.Errorf("explicacao: expected %q, got %q", result.Explicacao, got.Explicacao)
	}
	if got.SolucaoCliente != result.SolucaoCliente {
		t.Errorf("solucao_cliente: expected %q, got %q", result.SolucaoCliente, got.SolucaoCliente)
	}
	if got.SolucaoTecnica != result.SolucaoTecnica {
		t.Errorf("solucao_tecnica: expected %q, got %q", result.SolucaoTecnica, got.SolucaoTecnica)
	}
	if got.Confianca != result.Confianca {
		t.Errorf("confianca: expected %q, got %q", result.Confianca, got.Confianca)
	}
}

func TestListAllEmptyStore(t *testing.T) {
	adapter := newTestAdapter(t)

	messages, err := adapter.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected empty result, got %d rows", len(messages))
	}
}
