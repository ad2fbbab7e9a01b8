package approve_booking

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

type BookingsService interface {
	Approve(ctx context.Context, id int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
