package manage_templates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/service/messaging"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgTemplateNotFound   = "template not found"
)

// UpdateTemplateRequest HTTP request model
type UpdateTemplateRequest struct {
	Body string `json:"body"`
}

// UpdateTemplateResponse HTTP response model
type UpdateTemplateResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

// ListTemplatesResponse HTTP response model: имя шаблона -> тело
type ListTemplatesResponse struct {
	Templates map[string]string `json:"templates"`
}

type Handler struct {
	service MessagingService
	logger  Logger
}

func NewHandler(service MessagingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/templates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		h.logger.Error("GET /templates - Failed to list templates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListTemplatesResponse{Templates: templates})
}

// HandleUpdate PUT /api/v1/templates/{name}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req UpdateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /templates/{name} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), name, req.Body); err != nil {
		switch {
		case errors.Is(err, messaging.ErrInvalidInput):
			h.logger.Warn("PUT /templates/{name} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, messaging.ErrTemplateNotFound):
			h.logger.Warn("PUT /templates/{name} - Template not found: name=%q", name)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		default:
			h.logger.Error("PUT /templates/{name} - Failed to update template: name=%q, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /templates/{name} - Template updated: name=%q", name)
	handlers.RespondJSON(w, http.StatusOK, UpdateTemplateResponse{Success: true, Name: name})
}
