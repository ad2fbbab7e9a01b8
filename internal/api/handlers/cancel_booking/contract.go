package cancel_booking

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/service/bookings"
)

type BookingsService interface {
	Cancel(ctx context.Context, id int64, reason string) (*bookings.DecisionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
