package list_bookings

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.Booking, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
