package jsonstore

import (
	"context"
	"sort"

	"github.com/eksamtint/Eksamtint/internal/domain"
	waitlistRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/waitlist"
)

// WaitlistRepo представление листа ожидания поверх документного хранилища
type WaitlistRepo struct {
	s *Store
}

// Create добавляет запись в лист ожидания
func (r *WaitlistRepo) Create(ctx context.Context, e *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e.ID = nextID(e.AddedAt.UnixMilli(), func(id int64) bool {
		return r.s.findWaitlistEntry(id) != nil
	})

	cp := *e
	r.s.waitlist = append(r.s.waitlist, &cp)
	if err := r.s.saveWaitlist(); err != nil {
		r.s.waitlist = r.s.waitlist[:len(r.s.waitlist)-1]
		return nil, err
	}

	out := cp
	return &out, nil
}

// GetByID возвращает запись по идентификатору
func (r *WaitlistRepo) GetByID(ctx context.Context, id int64) (*domain.WaitlistEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e := r.s.findWaitlistEntry(id)
	if e == nil {
		return nil, waitlistRepo.ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

// List возвращает весь лист ожидания в порядке добавления
func (r *WaitlistRepo) List(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.collect(func(*domain.WaitlistEntry) bool { return true }), nil
}

// ListBySlotDate возвращает кандидатов для пары (слот, дата) в порядке FIFO
func (r *WaitlistRepo) ListBySlotDate(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.collect(func(e *domain.WaitlistEntry) bool {
		return e.SlotID == slotID && e.Date == date
	}), nil
}

// Delete удаляет запись листа ожидания
func (r *WaitlistRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := -1
	for i, e := range r.s.waitlist {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return waitlistRepo.ErrEntryNotFound
	}

	removed := r.s.waitlist[idx]
	r.s.waitlist = append(r.s.waitlist[:idx], r.s.waitlist[idx+1:]...)
	if err := r.s.saveWaitlist(); err != nil {
		r.s.waitlist = append(r.s.waitlist[:idx], append([]*domain.WaitlistEntry{removed}, r.s.waitlist[idx:]...)...)
		return err
	}
	return nil
}

func (r *WaitlistRepo) collect(match func(*domain.WaitlistEntry) bool) []*domain.WaitlistEntry {
	var out []*domain.WaitlistEntry
	for _, e := range r.s.waitlist {
		if match(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AddedAt.Before(out[j].AddedAt)
	})
	return out
}

func (s *Store) findWaitlistEntry(id int64) *domain.WaitlistEntry {
	for _, e := range s.waitlist {
		if e.ID == id {
			return e
		}
	}
	return nil
}
