package jsonstore

import (
	"context"
	"sort"

	"github.com/eksamtint/Eksamtint/internal/domain"
	bookingRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/booking"
)

// BookingRepo представление коллекции бронирований поверх документного
// хранилища. Возвращает сигнальные ошибки PostgreSQL-репозитория.
type BookingRepo struct {
	s *Store
}

// Create создает бронирование с идентификатором, выведенным из времени
// создания; коллизии в пределах миллисекунды сдвигают идентификатор вперед
func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b.ID = nextID(b.CreatedAt.UnixMilli(), func(id int64) bool {
		return r.s.findBooking(id) != nil
	})

	cp := copyBooking(b)
	r.s.bookings = append(r.s.bookings, cp)
	if err := r.s.saveBookings(); err != nil {
		r.s.bookings = r.s.bookings[:len(r.s.bookings)-1]
		return nil, err
	}

	return copyBooking(cp), nil
}

// GetByID возвращает бронирование по идентификатору
func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b := r.s.findBooking(id)
	if b == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return copyBooking(b), nil
}

// List возвращает все бронирования в порядке создания
func (r *BookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.collect(func(*domain.Booking) bool { return true }), nil
}

// ListByStatus возвращает бронирования с заданным статусом в порядке создания
func (r *BookingRepo) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.collect(func(b *domain.Booking) bool { return b.Status == status }), nil
}

// ListBySlotKey возвращает бронирования, сгруппированные под ключом (date, slot)
func (r *BookingRepo) ListBySlotKey(ctx context.Context, slotKey string) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.collect(func(b *domain.Booking) bool { return b.SlotKey == slotKey }), nil
}

// HasActiveBooking проверяет наличие активного бронирования для той же
// тройки (email, date, slot)
func (r *BookingRepo) HasActiveBooking(ctx context.Context, email, date string, slotID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.bookings {
		if b.Email == email && b.Date == date && b.SlotID == slotID && b.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

// Update перезаписывает изменяемые поля бронирования
func (r *BookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := r.s.findBooking(b.ID)
	if stored == nil {
		return bookingRepo.ErrBookingNotFound
	}

	prev := copyBooking(stored)
	stored.Status = b.Status
	stored.RejectionReason = b.RejectionReason
	stored.CancellationReason = b.CancellationReason
	stored.History = append([]domain.HistoryEntry(nil), b.History...)
	stored.UpdatedAt = b.UpdatedAt

	if err := r.s.saveBookings(); err != nil {
		*stored = *prev
		return err
	}
	return nil
}

// CountByStatus возвращает количество бронирований по каждому статусу
func (r *BookingRepo) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	counts := make(map[domain.BookingStatus]int)
	for _, b := range r.s.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (r *BookingRepo) collect(match func(*domain.Booking) bool) []*domain.Booking {
	var out []*domain.Booking
	for _, b := range r.s.bookings {
		if match(b) {
			out = append(out, copyBooking(b))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) findBooking(id int64) *domain.Booking {
	for _, b := range s.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func copyBooking(b *domain.Booking) *domain.Booking {
	cp := *b
	cp.History = append([]domain.HistoryEntry(nil), b.History...)
	return &cp
}
