package get_audit_logs

import (
	"net/http"
	"time"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
)

// AuditLogItem запись журнала административных действий
type AuditLogItem struct {
	ID        int64  `json:"id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

// GetAuditLogsResponse HTTP response model, самые свежие записи первыми
type GetAuditLogsResponse struct {
	Logs  []AuditLogItem `json:"logs"`
	Total int            `json:"total"`
}

type Handler struct {
	service AuditService
	logger  Logger
}

func NewHandler(service AuditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/audit-logs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /audit-logs - Failed to list audit logs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]AuditLogItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, AuditLogItem{
			ID:        e.ID,
			Action:    e.Action,
			Details:   e.Details,
			Timestamp: e.Timestamp.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, GetAuditLogsResponse{
		Logs:  items,
		Total: len(items),
	})
}
