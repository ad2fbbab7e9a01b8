package approve_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
	msgAlreadyDecided   = "booking has already been decided"
)

// ApproveBookingResponse HTTP response model
type ApproveBookingResponse struct {
	Success   bool   `json:"success"`
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

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

// Handle POST /api/v1/bookings/{id}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/approve - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.Approve(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/approve - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAlreadyDecided):
			h.logger.Warn("POST /bookings/{id}/approve - Already decided: booking_id=%d", id)
			handlers.RespondConflict(w, handlers.KindConflictError, msgAlreadyDecided)

		default:
			h.logger.Error("POST /bookings/{id}/approve - Failed to approve: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/approve - Booking approved: booking_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, ApproveBookingResponse{
		Success:   true,
		ID:        booking.ID,
		Status:    string(booking.Status),
		UpdatedAt: booking.UpdatedAt.Format(time.RFC3339),
	})
}
