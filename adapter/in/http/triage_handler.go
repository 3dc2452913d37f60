// Package http provides the inbound HTTP adapters.
package http

import (
	"path/filepath"

	"triage_server/core/domain"
	"triage_server/core/port/in"
	"triage_server/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// TriageHandler handles the classification API and the two static views.
type TriageHandler struct {
	service   in.TriageService
	staticDir string
}

// NewTriageHandler creates a new TriageHandler.
func NewTriageHandler(service in.TriageService, staticDir string) *TriageHandler {
	return &TriageHandler{service: service, staticDir: staticDir}
}

// Register registers triage routes.
func (h *TriageHandler) Register(app *fiber.App) {
	app.Post("/classificar", h.Classify)
	app.Get("/mensagens", h.ListMessages)
	app.Get("/", h.ClientPage)
	app.Get("/tecnico", h.TechnicianPage)
}

type classifyRequest struct {
	Mensagem string `json:"mensagem"`
}

type classifyResponse struct {
	Mensagem   string `json:"mensagem"`
	Categoria  string `json:"categoria"`
	Explicacao string `json:"explicacao"`
	// Solucao duplicates SolucaoCliente for backward compatibility.
	Solucao        string `json:"solucao"`
	SolucaoCliente string `json:"solucao_cliente"`
	SolucaoTecnica string `json:"solucao_tecnica"`
	Confianca      string `json:"confianca"`
}

// Classify handles POST /classificar.
func (h *TriageHandler) Classify(c *fiber.Ctx) error {
	var req classifyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Corpo da requisição inválido.").WithError(err)
	}

	result, err := h.service.Classify(c.Context(), req.Mensagem)
	if err != nil {
		return err
	}

	return c.JSON(classifyResponse{
		Mensagem:       result.Mensagem,
		Categoria:      string(result.Categoria),
		Explicacao:     result.Explicacao,
		Solucao:        result.SolucaoCliente,
		SolucaoCliente: result.SolucaoCliente,
		SolucaoTecnica: result.SolucaoTecnica,
		Confianca:      string(result.Confianca),
	})
}

// ListMessages handles GET /mensagens. Returns every stored row, with
// identifiers, in storage order.
func (h *TriageHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.service.ListMessages(c.Context())
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []domain.StoredMessage{}
	}
	return c.JSON(messages)
}

// ClientPage serves the customer-facing view.
func (h *TriageHandler) ClientPage(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.staticDir, "cliente.html"))
}

// TechnicianPage serves the technician dashboard.
func (h *TriageHandler) TechnicianPage(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.staticDir, "tecnico.html"))
}
