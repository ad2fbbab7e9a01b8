package bookings

import (
	"context"
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
}

// WaitlistRepository интерфейс репозитория листа ожидания.
// Используется для поиска кандидатов на продвижение после освобождения места.
type WaitlistRepository interface {
	ListBySlotDate(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error)
}

// AuditLog интерфейс журнала административных действий
type AuditLog interface {
	Append(ctx context.Context, action, details string) error
}

// MetricsRecorder счетчики жизненного цикла бронирований
type MetricsRecorder interface {
	BookingDecided(status string)
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
