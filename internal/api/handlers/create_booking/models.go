package create_booking

import (
	"time"

	createBooking "github.com/eksamtint/Eksamtint/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SlotID    int64  `json:"slotId"`
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"` // "2026-09-15"

	PhoneVerified bool   `json:"phoneVerified,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Source        string `json:"source,omitempty"`
	Priority      int    `json:"priority,omitempty"`
}

// CreateBookingResponse HTTP response model. Ровно одна из секций booking и
// waitlist заполнена, в зависимости от waitlisted.
type CreateBookingResponse struct {
	Success    bool              `json:"success"`
	Waitlisted bool              `json:"waitlisted"`
	Message    string            `json:"message"`
	Booking    *BookingResponse  `json:"booking,omitempty"`
	Waitlist   *WaitlistResponse `json:"waitlist,omitempty"`
}

// BookingResponse принятое бронирование
type BookingResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	SlotID       int64   `json:"slotId"`
	Date         string  `json:"date"`
	SlotKey      string  `json:"slotKey"`
	Status       string  `json:"status"`
	ServiceID    int64   `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Notes        string  `json:"notes,omitempty"`
	Source       string  `json:"source"`
	CreatedAt    string  `json:"createdAt"`
}

// WaitlistResponse запись листа ожидания
type WaitlistResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	SlotID   int64  `json:"slotId"`
	Date     string `json:"date"`
	Position int    `json:"position"`
	AddedAt  string `json:"addedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		SlotID:        r.SlotID,
		ServiceID:     r.ServiceID,
		Date:          r.Date,
		PhoneVerified: r.PhoneVerified,
		Notes:         r.Notes,
		Source:        r.Source,
		Priority:      r.Priority,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		Success:    true,
		Waitlisted: resp.Waitlisted,
	}

	if resp.Waitlisted {
		out.Message = "Slot is full, request added to the waitlist"
		out.Waitlist = &WaitlistResponse{
			ID:       resp.Waitlist.ID,
			Name:     resp.Waitlist.Name,
			Email:    resp.Waitlist.Email,
			Phone:    resp.Waitlist.Phone,
			SlotID:   resp.Waitlist.SlotID,
			Date:     resp.Waitlist.Date,
			Position: resp.Waitlist.Position,
			AddedAt:  resp.Waitlist.AddedAt.Format(time.RFC3339),
		}
		return out
	}

	out.Message = "Booking received"
	out.Booking = &BookingResponse{
		ID:           resp.Booking.ID,
		Name:         resp.Booking.Name,
		Email:        resp.Booking.Email,
		Phone:        resp.Booking.Phone,
		SlotID:       resp.Booking.SlotID,
		Date:         resp.Booking.Date,
		SlotKey:      resp.Booking.SlotKey,
		Status:       resp.Booking.Status,
		ServiceID:    resp.Booking.ServiceID,
		ServiceName:  resp.Booking.ServiceName,
		ServicePrice: resp.Booking.ServicePrice,
		Notes:        resp.Booking.Notes,
		Source:       resp.Booking.Source,
		CreatedAt:    resp.Booking.CreatedAt.Format(time.RFC3339),
	}
	return out
}
