package get_queue_stats

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/service/bookings"
)

type BookingsService interface {
	Stats(ctx context.Context) (*bookings.QueueStats, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
