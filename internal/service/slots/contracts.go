package slots

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	List(ctx context.Context) ([]*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Create(ctx context.Context, label string, capacity int) (*domain.Slot, error)
	Update(ctx context.Context, id int64, update domain.SlotUpdate) (*domain.Slot, error)
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
