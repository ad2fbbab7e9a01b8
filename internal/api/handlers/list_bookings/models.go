package list_bookings

import (
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingItem `json:"bookings"`
	Total    int           `json:"total"`
}

// BookingItem элемент списка бронирований
type BookingItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	SlotID       int64   `json:"slotId"`
	Date         string  `json:"date"`
	SlotKey      string  `json:"slotKey"`
	Status       string  `json:"status"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Priority     int     `json:"priority"`
	CreatedAt    string  `json:"createdAt"`
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(bookings []*domain.Booking) *ListBookingsResponse {
	items := make([]BookingItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, BookingItem{
			ID:           b.ID,
			Name:         b.Name,
			Email:        b.Email,
			Phone:        b.Phone,
			SlotID:       b.SlotID,
			Date:         b.Date,
			SlotKey:      b.SlotKey,
			Status:       string(b.Status),
			ServiceName:  b.ServiceName,
			ServicePrice: b.ServicePrice,
			Priority:     b.Priority,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		})
	}
	return &ListBookingsResponse{
		Bookings: items,
		Total:    len(items),
	}
}
