package cancel_booking

import (
	"time"

	"github.com/eksamtint/Eksamtint/internal/service/bookings"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success            bool                `json:"success"`
	ID                 int64               `json:"id"`
	Status             string              `json:"status"`
	UpdatedAt          string              `json:"updatedAt"`
	PromotionCandidate *PromotionCandidate `json:"promotionCandidate,omitempty"`
}

// PromotionCandidate подсказка оператору о возможности продвижения
type PromotionCandidate struct {
	EntryID int64  `json:"entryId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	SlotID  int64  `json:"slotId"`
	Date    string `json:"date"`
	AddedAt string `json:"addedAt"`
}

// FromDecision конвертирует результат перехода в HTTP response
func FromDecision(result *bookings.DecisionResult) *CancelBookingResponse {
	resp := &CancelBookingResponse{
		Success:   true,
		ID:        result.Booking.ID,
		Status:    string(result.Booking.Status),
		UpdatedAt: result.Booking.UpdatedAt.Format(time.RFC3339),
	}
	if c := result.PromotionCandidate; c != nil {
		resp.PromotionCandidate = &PromotionCandidate{
			EntryID: c.ID,
			Name:    c.Name,
			Email:   c.Email,
			SlotID:  c.SlotID,
			Date:    c.Date,
			AddedAt: c.AddedAt.Format(time.RFC3339),
		}
	}
	return resp
}
