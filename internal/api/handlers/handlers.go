package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Виды ошибок в теле ответа. Клиент ветвится по kind, не по тексту message.
const (
	KindValidationError       = "ValidationError"
	KindDuplicateBookingError = "DuplicateBookingError"
	KindNotFoundError         = "NotFoundError"
	KindCapacityExceededError = "CapacityExceededError"
	KindConflictError         = "ConflictError"
	KindUnauthorizedError     = "UnauthorizedError"
	KindInternalError         = "InternalError"
)

// ErrorResponse единый конверт ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// DecodeJSON декодирует тело запроса в указанную структуру
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError отправляет конверт ошибки с указанным статусом и видом
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{
		Success: false,
		Message: message,
		Kind:    kind,
	})
}

// RespondBadRequest отправляет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, KindValidationError, message)
}

// RespondNotFound отправляет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, KindNotFoundError, message)
}

// RespondConflict отправляет 409 Conflict с уточненным видом ошибки
func RespondConflict(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusConflict, kind, message)
}

// RespondUnauthorized отправляет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, KindUnauthorizedError, message)
}

// RespondInternalError отправляет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindInternalError, "internal server error")
}
