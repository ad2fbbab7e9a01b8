package offerings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eksamtint/Eksamtint/internal/domain"
	offeringRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/offering"
)

// Service сервис каталога услуг
type Service struct {
	offeringRepo OfferingRepository
	auditLog     AuditLog
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога услуг
func NewService(offeringRepo OfferingRepository, auditLog AuditLog, logger Logger) *Service {
	return &Service{
		offeringRepo: offeringRepo,
		auditLog:     auditLog,
		logger:       logger,
	}
}

// List возвращает все услуги каталога
func (s *Service) List(ctx context.Context) ([]*domain.Offering, error) {
	list, err := s.offeringRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Get возвращает услугу по идентификатору
func (s *Service) Get(ctx context.Context, id int64) (*domain.Offering, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			s.logger.Warn("Get: offering id=%d not found", id)
			return nil, ErrOfferingNotFound
		}
		s.logger.Error("Get: repository error for offering id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return offering, nil
}

// Add добавляет услугу в каталог
func (s *Service) Add(ctx context.Context, name string, durationMinutes int, price float64) (*domain.Offering, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	offering, err := s.offeringRepo.Create(ctx, name, durationMinutes, price)
	if err != nil {
		s.logger.Error("Add: repository error for offering %q: %v", name, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	if err := s.auditLog.Append(ctx, domain.AuditServiceAdd, fmt.Sprintf("Added new service: %s", name)); err != nil {
		s.logger.Warn("Add: failed to append audit log for offering %q: %v", name, err)
	}

	s.logger.Info("Add: offering id=%d (%s) created", offering.ID, offering.Name)
	return offering, nil
}

// Delete удаляет услугу из каталога
func (s *Service) Delete(ctx context.Context, id int64) error {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			s.logger.Warn("Delete: offering id=%d not found", id)
			return ErrOfferingNotFound
		}
		s.logger.Error("Delete: repository error for offering id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.offeringRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			return ErrOfferingNotFound
		}
		s.logger.Error("Delete: repository error for offering id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.auditLog.Append(ctx, domain.AuditServiceDelete, fmt.Sprintf("Deleted service: %s", offering.Name)); err != nil {
		s.logger.Warn("Delete: failed to append audit log for offering %q: %v", offering.Name, err)
	}

	s.logger.Info("Delete: offering id=%d (%s) removed", id, offering.Name)
	return nil
}
