package jsonstore

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
	offeringRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/offering"
)

// OfferingRepo представление каталога услуг поверх документного хранилища
type OfferingRepo struct {
	s *Store
}

// List возвращает все услуги в порядке идентификаторов
func (r *OfferingRepo) List(ctx context.Context) ([]*domain.Offering, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.Offering, 0, len(r.s.offerings))
	for _, o := range r.s.offerings {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

// GetByID возвращает услугу по идентификатору
func (r *OfferingRepo) GetByID(ctx context.Context, id int64) (*domain.Offering, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, o := range r.s.offerings {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, offeringRepo.ErrOfferingNotFound
}

// Create создает услугу с идентификатором max(id)+1
func (r *OfferingRepo) Create(ctx context.Context, name string, durationMinutes int, price float64) (*domain.Offering, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var maxID int64
	for _, o := range r.s.offerings {
		if o.ID > maxID {
			maxID = o.ID
		}
	}

	o := &domain.Offering{ID: maxID + 1, Name: name, DurationMinutes: durationMinutes, Price: price}
	r.s.offerings = append(r.s.offerings, o)
	if err := r.s.saveOfferings(); err != nil {
		r.s.offerings = r.s.offerings[:len(r.s.offerings)-1]
		return nil, err
	}

	cp := *o
	return &cp, nil
}

// Delete удаляет услугу из каталога
func (r *OfferingRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := -1
	for i, o := range r.s.offerings {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return offeringRepo.ErrOfferingNotFound
	}

	removed := r.s.offerings[idx]
	r.s.offerings = append(r.s.offerings[:idx], r.s.offerings[idx+1:]...)
	if err := r.s.saveOfferings(); err != nil {
		r.s.offerings = append(r.s.offerings[:idx], append([]*domain.Offering{removed}, r.s.offerings[idx:]...)...)
		return err
	}
	return nil
}
