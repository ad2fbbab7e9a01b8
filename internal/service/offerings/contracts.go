package offerings

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// OfferingRepository интерфейс каталога услуг
type OfferingRepository interface {
	List(ctx context.Context) ([]*domain.Offering, error)
	GetByID(ctx context.Context, id int64) (*domain.Offering, error)
	Create(ctx context.Context, name string, durationMinutes int, price float64) (*domain.Offering, error)
	Delete(ctx context.Context, id int64) error
}

// AuditLog интерфейс журнала административных действий
type AuditLog interface {
	Append(ctx context.Context, action, details string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
