package get_slot_status

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBySlotKey(ctx context.Context, slotKey string) ([]*domain.Booking, error)
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	ListBySlotDate(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error)
}

// SlotRepository интерфейс каталога слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	List(ctx context.Context) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
