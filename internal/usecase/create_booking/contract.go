package create_booking

import (
	"context"
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListBySlotKey(ctx context.Context, slotKey string) ([]*domain.Booking, error)
	HasActiveBooking(ctx context.Context, email, date string, slotID int64) (bool, error)
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, e *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	ListBySlotDate(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error)
}

// SlotRepository интерфейс каталога слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// OfferingRepository интерфейс каталога услуг
type OfferingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Offering, error)
}

// AuditLog интерфейс журнала административных действий
type AuditLog interface {
	Append(ctx context.Context, action, details string) error
}

// SlotLocker критическая секция по ключу слота. Проверка вместимости,
// проверка дубликата и запись выполняются под одним захватом ключа.
type SlotLocker interface {
	Do(key string, fn func() error) error
}

// MetricsRecorder счетчики приема заявок
type MetricsRecorder interface {
	BookingCreated()
	BookingWaitlisted()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
