package waitlist

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.WaitlistEntry, error)
	List(ctx context.Context) ([]*domain.WaitlistEntry, error)
	ListBySlotDate(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
