package promote_waitlist

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	promoteWaitlist "github.com/eksamtint/Eksamtint/internal/usecase/promote_waitlist"
)

const (
	msgInvalidEntryID   = "invalid waitlist entry id"
	msgEntryNotFound    = "waitlist entry not found"
	msgSlotNotFound     = "slot not found"
	msgSlotStillFull    = "slot is still full"
	msgDuplicateBooking = "an active booking already exists for this slot and date"
)

// PromoteWaitlistResponse HTTP response model
type PromoteWaitlistResponse struct {
	Success      bool    `json:"success"`
	BookingID    int64   `json:"bookingId"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	SlotID       int64   `json:"slotId"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	CreatedAt    string  `json:"createdAt"`
}

type Handler struct {
	useCase PromoteWaitlistUseCase
	logger  Logger
}

func NewHandler(useCase PromoteWaitlistUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/waitlist/{id}/promote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /waitlist/{id}/promote - Invalid entry id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &promoteWaitlist.Request{EntryID: id})
	if err != nil {
		switch {
		case errors.Is(err, promoteWaitlist.ErrEntryNotFound):
			h.logger.Warn("POST /waitlist/{id}/promote - Entry not found: entry_id=%d", id)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, promoteWaitlist.ErrSlotNotFound):
			h.logger.Warn("POST /waitlist/{id}/promote - Slot not found: entry_id=%d", id)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, promoteWaitlist.ErrSlotStillFull):
			h.logger.Warn("POST /waitlist/{id}/promote - Slot still full: entry_id=%d", id)
			handlers.RespondConflict(w, handlers.KindCapacityExceededError, msgSlotStillFull)

		case errors.Is(err, promoteWaitlist.ErrDuplicateBooking):
			h.logger.Warn("POST /waitlist/{id}/promote - Duplicate booking: entry_id=%d", id)
			handlers.RespondConflict(w, handlers.KindDuplicateBookingError, msgDuplicateBooking)

		default:
			h.logger.Error("POST /waitlist/{id}/promote - Failed to promote: entry_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /waitlist/{id}/promote - Entry promoted: entry_id=%d, booking_id=%d", id, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, PromoteWaitlistResponse{
		Success:      true,
		BookingID:    result.BookingID,
		Name:         result.Name,
		Email:        result.Email,
		SlotID:       result.SlotID,
		Date:         result.Date,
		Status:       result.Status,
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		CreatedAt:    result.CreatedAt.Format(time.RFC3339),
	})
}
