package create_booking

import (
	"errors"
	"net/http"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	createBooking "github.com/eksamtint/Eksamtint/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotFound       = "slot not found"
	msgServiceNotFound    = "service not found"
	msgDuplicateBooking   = "an active booking already exists for this slot and date"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: email=%s, slot_id=%d, date=%s",
				req.Email, req.SlotID, req.Date)
			handlers.RespondConflict(w, handlers.KindDuplicateBookingError, msgDuplicateBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Waitlisted {
		h.logger.Info("POST /bookings - Request waitlisted: entry_id=%d, email=%s", result.Waitlist.ID, req.Email)
		handlers.RespondJSON(w, http.StatusAccepted, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, email=%s",
		result.Booking.ID, req.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
