package list_bookings

import (
	"errors"
	"net/http"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/internal/service/bookings"
)

const msgInvalidStatus = "unknown booking status"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		list []*domain.Booking
		err  error
	)
	if status == "" {
		list, err = h.service.List(r.Context())
	} else {
		list, err = h.service.ListByStatus(r.Context(), status)
	}
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStatus) {
			h.logger.Warn("GET /bookings - Invalid status filter: %q", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(list))
}
