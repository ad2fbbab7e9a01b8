package get_slot_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	getSlotStatus "github.com/eksamtint/Eksamtint/internal/usecase/get_slot_status"
)

const (
	msgInvalidSlotID = "invalid slot id"
	msgSlotNotFound  = "slot not found"
)

type Handler struct {
	useCase GetSlotStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSlot GET /api/v1/slots/{id}/status?date=2026-09-15
func (h *Handler) HandleSlot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/status - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlotStatus.Request{
		SlotID: id,
		Date:   r.URL.Query().Get("date"),
	})
	if err != nil {
		h.respondError(w, "GET /slots/{id}/status", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromStatus(result.Status))
}

// HandleDay GET /api/v1/slots/status?date=2026-09-15
func (h *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.ExecuteDay(r.Context(), &getSlotStatus.DayRequest{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		h.respondError(w, "GET /slots/status", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDayResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, getSlotStatus.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, getSlotStatus.ErrSlotNotFound):
		h.logger.Warn("%s - Slot not found", op)
		handlers.RespondNotFound(w, msgSlotNotFound)

	default:
		h.logger.Error("%s - Failed to compute slot status: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
