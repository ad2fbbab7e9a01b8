package manage_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/service/slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlotID      = "invalid slot id"
	msgSlotNotFound       = "slot not found"
)

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

// HandleAdd POST /api/v1/slots
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.Add(r.Context(), req.Label, req.Capacity)
	if err != nil {
		if errors.Is(err, slots.ErrInvalidInput) {
			h.logger.Warn("POST /slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /slots - Failed to add slot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /slots - Slot added: slot_id=%d, label=%q", slot.ID, slot.Label)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(slot))
}

// HandleUpdate PATCH /api/v1/slots/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /slots/{id} - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.Update(r.Context(), id, req.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{id} - Slot not found: slot_id=%d", id)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("PATCH /slots/{id} - Failed to update slot: slot_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id} - Slot updated: slot_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(slot))
}
