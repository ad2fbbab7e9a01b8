package get_queue_stats

import (
	"net/http"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
)

// QueueStatsResponse HTTP response model. total не включает отмененные.
type QueueStatsResponse struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Rejected  int `json:"rejected"`
	Total     int `json:"total"`
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

// Handle GET /api/v1/bookings/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, QueueStatsResponse{
		Pending:   stats.Pending,
		Confirmed: stats.Confirmed,
		Rejected:  stats.Rejected,
		Total:     stats.Total,
	})
}
