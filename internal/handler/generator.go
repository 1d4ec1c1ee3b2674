package handler

import (
	"log/slog"
	"net/http"

	"github.com/vaultpass/pwgen/internal/middleware"
	"github.com/vaultpass/pwgen/internal/model"
	"github.com/vaultpass/pwgen/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
// An empty body generates with the default policy.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if service.IsValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("password generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	attrs := []any{"length", resp.Length, "level", resp.Strength.Level, "hashed", resp.Hash != ""}
	if client, ok := middleware.ClientFromContext(r.Context()); ok {
		attrs = append(attrs, "client", client)
	}
	slog.Info("password generated", attrs...)

	writeJSON(w, http.StatusOK, resp)
}

// HandlePolicy handles GET /api/v1/policy requests.
func (h *GeneratorHandler) HandlePolicy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Policy())
}
