package jsonstore

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
	slotRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/slot"
)

// SlotRepo представление каталога слотов поверх документного хранилища.
// Возвращает те же сигнальные ошибки, что и PostgreSQL-репозиторий.
type SlotRepo struct {
	s *Store
}

// List возвращает все слоты в порядке их идентификаторов
func (r *SlotRepo) List(ctx context.Context) ([]*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	slots := make([]*domain.Slot, 0, len(r.s.slots))
	for _, sl := range r.s.slots {
		cp := *sl
		slots = append(slots, &cp)
	}
	return slots, nil
}

// GetByID возвращает слот по идентификатору
func (r *SlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sl := r.s.findSlot(id)
	if sl == nil {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *sl
	return &cp, nil
}

// Create создает слот с идентификатором max(id)+1, либо 1 для пустого каталога
func (r *SlotRepo) Create(ctx context.Context, label string, capacity int) (*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var maxID int64
	for _, sl := range r.s.slots {
		if sl.ID > maxID {
			maxID = sl.ID
		}
	}

	sl := &domain.Slot{ID: maxID + 1, Label: label, Capacity: capacity, Enabled: true}
	r.s.slots = append(r.s.slots, sl)
	if err := r.s.saveSlots(); err != nil {
		r.s.slots = r.s.slots[:len(r.s.slots)-1]
		return nil, err
	}

	cp := *sl
	return &cp, nil
}

// Update обновляет изменяемые поля слота (capacity, enabled)
func (r *SlotRepo) Update(ctx context.Context, id int64, update domain.SlotUpdate) (*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sl := r.s.findSlot(id)
	if sl == nil {
		return nil, slotRepo.ErrSlotNotFound
	}

	prev := *sl
	if update.Capacity != nil {
		sl.Capacity = *update.Capacity
	}
	if update.Enabled != nil {
		sl.Enabled = *update.Enabled
	}

	if err := r.s.saveSlots(); err != nil {
		*sl = prev
		return nil, err
	}

	cp := *sl
	return &cp, nil
}

func (s *Store) findSlot(id int64) *domain.Slot {
	for _, sl := range s.slots {
		if sl.ID == id {
			return sl
		}
	}
	return nil
}
