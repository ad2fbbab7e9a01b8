package get_booking

import (
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone"`
	SlotID             int64          `json:"slotId"`
	Date               string         `json:"date"`
	SlotKey            string         `json:"slotKey"`
	Status             string         `json:"status"`
	ServiceID          int64          `json:"serviceId"`
	ServiceName        string         `json:"serviceName"`
	ServicePrice       float64        `json:"servicePrice"`
	PhoneVerified      bool           `json:"phoneVerified"`
	Notes              string         `json:"notes,omitempty"`
	Source             string         `json:"source"`
	Priority           int            `json:"priority"`
	RejectionReason    *string        `json:"rejectionReason,omitempty"`
	CancellationReason *string        `json:"cancellationReason,omitempty"`
	History            []HistoryEntry `json:"history"`
	CreatedAt          string         `json:"createdAt"`
	UpdatedAt          string         `json:"updatedAt"`
}

// HistoryEntry шаг журнала переходов бронирования
type HistoryEntry struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	history := make([]HistoryEntry, 0, len(b.History))
	for _, h := range b.History {
		history = append(history, HistoryEntry{
			Status:    string(h.Status),
			Timestamp: h.Timestamp.Format(time.RFC3339),
			Note:      h.Note,
		})
	}

	return &BookingResponse{
		ID:                 b.ID,
		Name:               b.Name,
		Email:              b.Email,
		Phone:              b.Phone,
		SlotID:             b.SlotID,
		Date:               b.Date,
		SlotKey:            b.SlotKey,
		Status:             string(b.Status),
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		PhoneVerified:      b.PhoneVerified,
		Notes:              b.Notes,
		Source:             b.Source,
		Priority:           b.Priority,
		RejectionReason:    b.RejectionReason,
		CancellationReason: b.CancellationReason,
		History:            history,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}
