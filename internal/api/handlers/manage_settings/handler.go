package manage_settings

import (
	"errors"
	"net/http"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/internal/service/settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSettingsNotFound   = "settings not found"
)

// UpdateSettingsRequest HTTP request model. adminPassword принимается в
// открытом виде и хешируется перед сохранением.
type UpdateSettingsRequest struct {
	BusinessName  *string `json:"businessName,omitempty"`
	Currency      *string `json:"currency,omitempty"`
	SlotInterval  *int    `json:"slotInterval,omitempty"`
	AdminPassword *string `json:"adminPassword,omitempty"`
}

// SettingsResponse HTTP response model. Хеш пароля наружу не отдается.
type SettingsResponse struct {
	Success      bool   `json:"success"`
	BusinessName string `json:"businessName"`
	Currency     string `json:"currency"`
	SlotInterval int    `json:"slotInterval"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			h.logger.Warn("GET /settings - Settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)
			return
		}
		h.logger.Error("GET /settings - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(current))
}

// HandleUpdate PUT /api/v1/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), domain.SettingsUpdate{
		BusinessName:  req.BusinessName,
		Currency:      req.Currency,
		SlotInterval:  req.SlotInterval,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("PUT /settings - Settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, fromDomain(updated))
}

func fromDomain(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		Success:      true,
		BusinessName: s.BusinessName,
		Currency:     s.Currency,
		SlotInterval: s.SlotInterval,
	}
}
