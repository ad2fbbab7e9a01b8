package admin_login

import (
	"errors"
	"net/http"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/service/settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgWrongPassword      = "wrong password"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model. Пароль, прошедший проверку, дальше
// передается клиентом в заголовке X-Admin-Token.
type LoginResponse struct {
	Success bool `json:"success"`
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

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.CheckPassword(r.Context(), req.Password); err != nil {
		if errors.Is(err, settings.ErrWrongPassword) {
			h.logger.Warn("POST /admin/login - Wrong password")
			handlers.RespondUnauthorized(w, msgWrongPassword)
			return
		}
		h.logger.Error("POST /admin/login - Failed to check password: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin authenticated")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Success: true})
}
