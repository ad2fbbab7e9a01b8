package list_slots

import (
	"net/http"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/domain"
)

// SlotItem элемент каталога слотов
type SlotItem struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
	Enabled  bool   `json:"enabled"`
}

// ListSlotsResponse HTTP response model
type ListSlotsResponse struct {
	Slots []SlotItem `json:"slots"`
}

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(slots))
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(slots []*domain.Slot) *ListSlotsResponse {
	items := make([]SlotItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, SlotItem{
			ID:       s.ID,
			Label:    s.Label,
			Capacity: s.Capacity,
			Enabled:  s.Enabled,
		})
	}
	return &ListSlotsResponse{Slots: items}
}
