package get_waitlist

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/domain"
)

const msgInvalidSlotID = "invalid slot id"

// WaitlistItem элемент очереди ожидания
type WaitlistItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SlotID    int64  `json:"slotId"`
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"`
	Notes     string `json:"notes,omitempty"`
	AddedAt   string `json:"addedAt"`
}

// GetWaitlistResponse HTTP response model
type GetWaitlistResponse struct {
	Waitlist []WaitlistItem `json:"waitlist"`
	Total    int            `json:"total"`
}

type Handler struct {
	service WaitlistService
	logger  Logger
}

func NewHandler(service WaitlistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/waitlist — вся очередь, либо срез по слоту и дате
// через ?slotId=...&date=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		entries []*domain.WaitlistEntry
		err     error
	)

	slotParam := r.URL.Query().Get("slotId")
	date := r.URL.Query().Get("date")
	if slotParam != "" && date != "" {
		slotID, parseErr := strconv.ParseInt(slotParam, 10, 64)
		if parseErr != nil {
			h.logger.Warn("GET /waitlist - Invalid slot id: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidSlotID)
			return
		}
		entries, err = h.service.CandidatesFor(r.Context(), slotID, date)
	} else {
		entries, err = h.service.List(r.Context())
	}
	if err != nil {
		h.logger.Error("GET /waitlist - Failed to list waitlist: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]WaitlistItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, WaitlistItem{
			ID:        e.ID,
			Name:      e.Name,
			Email:     e.Email,
			Phone:     e.Phone,
			SlotID:    e.SlotID,
			ServiceID: e.ServiceID,
			Date:      e.Date,
			Notes:     e.Notes,
			AddedAt:   e.AddedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, GetWaitlistResponse{
		Waitlist: items,
		Total:    len(items),
	})
}
