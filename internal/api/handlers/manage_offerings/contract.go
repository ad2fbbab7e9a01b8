package manage_offerings

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

type OfferingsService interface {
	List(ctx context.Context) ([]*domain.Offering, error)
	Add(ctx context.Context, name string, durationMinutes int, price float64) (*domain.Offering, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
