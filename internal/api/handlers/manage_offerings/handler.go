package manage_offerings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/internal/service/offerings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidServiceID   = "invalid service id"
	msgServiceNotFound    = "service not found"
)

// AddOfferingRequest HTTP request model
type AddOfferingRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
}

// OfferingItem элемент каталога услуг
type OfferingItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
}

// ListOfferingsResponse HTTP response model
type ListOfferingsResponse struct {
	Services []OfferingItem `json:"services"`
}

// DeleteOfferingResponse HTTP response model
type DeleteOfferingResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	service OfferingsService
	logger  Logger
}

func NewHandler(service OfferingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/services
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]OfferingItem, 0, len(list))
	for _, o := range list {
		items = append(items, fromDomain(o))
	}
	handlers.RespondJSON(w, http.StatusOK, ListOfferingsResponse{Services: items})
}

// HandleAdd POST /api/v1/services
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddOfferingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	offering, err := h.service.Add(r.Context(), req.Name, req.DurationMinutes, req.Price)
	if err != nil {
		if errors.Is(err, offerings.ErrInvalidInput) {
			h.logger.Warn("POST /services - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /services - Failed to add service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services - Service added: service_id=%d, name=%q", offering.ID, offering.Name)
	handlers.RespondJSON(w, http.StatusCreated, fromDomain(offering))
}

// HandleDelete DELETE /api/v1/services/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, offerings.ErrOfferingNotFound) {
			h.logger.Warn("DELETE /services/{id} - Service not found: service_id=%d", id)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /services/{id} - Failed to delete service: service_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: service_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteOfferingResponse{Success: true})
}

func fromDomain(o *domain.Offering) OfferingItem {
	return OfferingItem{
		ID:              o.ID,
		Name:            o.Name,
		DurationMinutes: o.DurationMinutes,
		Price:           o.Price,
	}
}
