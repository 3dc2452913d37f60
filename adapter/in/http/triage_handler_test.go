package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"triage_server/core/domain"
	"triage_server/infra/middleware"
	"triage_server/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

type fakeTriageService struct {
	stored []domain.StoredMessage
	calls  int
}

func (f *fakeTriageService) Classify(ctx context.Context, mensagem string) (*domain.ClassificationResult, error) {
	if strings.TrimSpace(mensagem) == "" {
		return nil, apperr.Validation("A mensagem não pode ser vazia.")
	}
	f.calls++
	meta := domain.MetaFor(domain.CategorySuporte)
	return &domain.ClassificationResult{
		Mensagem:       mensagem,
		Categoria:      domain.CategorySuporte,
		Explicacao:     "Classificação semântica (IA) com score: 0.75",
		SolucaoCliente: meta.SolucaoCliente,
		SolucaoTecnica: meta.SolucaoTecnica,
		Confianca:      domain.ConfidenceAlta,
	}, nil
}

func (f *fakeTriageService) ListMessages(ctx context.Context) ([]domain.StoredMessage, error) {
	return f.stored, nil
}

func newTestApp(t *testing.T, svc *fakeTriageService, staticDir string) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	NewTriageHandler(svc, staticDir).Register(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	data, _ := io.ReadAll(resp.Body)
	rec.Body = bytes.NewBuffer(data)
	return rec
}

func TestClassifySuccess(t *testing.T) {
	svc := &fakeTriageService{}
	app := newTestApp(t, svc, "")

	rec := postJSON(t, app, "/classificar", `{"mensagem": "O sistema está travando quando clico em salvar"}`)

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	for _, key := range []string{"mensagem", "categoria", "explicacao", "solucao", "solucao_cliente", "solucao_tecnica", "confianca"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing key %q", key)
		}
	}

	if body["solucao"] != body["solucao_cliente"] {
		t.Errorf("solucao %q must duplicate solucao_cliente %q", body["solucao"], body["solucao_cliente"])
	}
	if body["categoria"] != "Suporte Técnico" {
		t.Errorf("expected categoria Suporte Técnico, got %q", body["categoria"])
	}
	if svc.calls != 1 {
		t.Errorf("expected one service call, got %d", svc.calls)
	}
}

func TestClassifyBlankMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty mensagem", body: `{"mensagem": ""}`},
		{name: "whitespace mensagem", body: `{"mensagem": "   "}`},
		{name: "missing mensagem", body: `{}`},
		{name: "malformed json", body: `{"mensagem": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeTriageService{}
			app := newTestApp(t, svc, "")

			rec := postJSON(t, app, "/classificar", tt.body)

			if rec.Code != 422 {
				t.Fatalf("expected status 422, got %d: %s", rec.Code, rec.Body.String())
			}

			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if _, ok := body["detail"]; !ok {
				t.Error("validation response missing detail")
			}
			if svc.calls != 0 {
				t.Errorf("expected no classification for blank input, got %d calls", svc.calls)
			}
		})
	}
}

func TestListMessages(t *testing.T) {
	svc := &fakeTriageService{stored: []domain.StoredMessage{
		{ID: 1, Mensagem: "primeira", Categoria: domain.CategorySuporte, Confianca: domain.ConfidenceAlta},
		{ID: 2, Mensagem: "segunda", Categoria: domain.CategoryOutros, Confianca: domain.ConfidenceBaixa},
	}}
	app := newTestApp(t, svc, "")

	req := httptest.NewRequest("GET", "/mensagens", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body []map[string]any
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(body))
	}
	if body[0]["id"].(float64) != 1 || body[1]["id"].(float64) != 2 {
		t.Error("rows not in storage order")
	}
}

func TestListMessagesEmpty(t *testing.T) {
	app := newTestApp(t, &fakeTriageService{}, "")

	req := httptest.NewRequest("GET", "/mensagens", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	data, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected empty JSON array, got %s", data)
	}
}

func TestStaticPages(t *testing.T) {
	staticDir := t.TempDir()
	clientHTML := "<html><body>cliente</body></html>"
	technicianHTML := "<html><body>tecnico</body></html>"
	if err := os.WriteFile(filepath.Join(staticDir, "cliente.html"), []byte(clientHTML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "tecnico.html"), []byte(technicianHTML), 0644); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, &fakeTriageService{}, staticDir)

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: clientHTML},
		{path: "/tecnico", want: technicianHTML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != 200 {
				t.Fatalf("expected status 200, got %d", resp.StatusCode)
			}
			data, _ := io.ReadAll(resp.Body)
			if string(data) != tt.want {
				t.Errorf("expected page served verbatim, got %s", data)
			}
		})
	}
}
