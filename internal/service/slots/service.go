package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eksamtint/Eksamtint/internal/domain"
	slotRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/slot"
)

// Service сервис администрирования каталога слотов
type Service struct {
	slotRepo SlotRepository
	auditLog AuditLog
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога слотов
func NewService(slotRepo SlotRepository, auditLog AuditLog, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		auditLog: auditLog,
		logger:   logger,
	}
}

// List возвращает каталог слотов
func (s *Service) List(ctx context.Context) ([]*domain.Slot, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return slots, nil
}

// Get возвращает слот по идентификатору
func (s *Service) Get(ctx context.Context, id int64) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Get: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Get: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return slot, nil
}

// Add создает новый слот в каталоге
func (s *Service) Add(ctx context.Context, label string, capacity int) (*domain.Slot, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if len(label) > domain.MaxLabelLength {
		return nil, fmt.Errorf("%w: label is too long", ErrInvalidInput)
	}
	if capacity < domain.MinSlotCapacity || capacity > domain.MaxSlotCapacity {
		return nil, fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}

	slot, err := s.slotRepo.Create(ctx, label, capacity)
	if err != nil {
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	if err := s.auditLog.Append(ctx, domain.AuditSlotAdd, fmt.Sprintf("Added new slot: %s", slot.Label)); err != nil {
		s.logger.Warn("Add: failed to append audit log: %v", err)
	}

	s.logger.Info("Add: created slot id=%d label=%q capacity=%d", slot.ID, slot.Label, slot.Capacity)
	return slot, nil
}

// Update обновляет изменяемые поля слота (capacity, enabled)
func (s *Service) Update(ctx context.Context, id int64, update domain.SlotUpdate) (*domain.Slot, error) {
	if update.Capacity != nil {
		if *update.Capacity < domain.MinSlotCapacity || *update.Capacity > domain.MaxSlotCapacity {
			return nil, fmt.Errorf("%w: capacity must be between %d and %d",
				ErrInvalidInput, domain.MinSlotCapacity, domain.MaxSlotCapacity)
		}
	}

	slot, err := s.slotRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	details := fmt.Sprintf("Updated slot %s: capacity=%d, enabled=%t", slot.Label, slot.Capacity, slot.Enabled)
	if err := s.auditLog.Append(ctx, domain.AuditSlotUpdate, details); err != nil {
		s.logger.Warn("Update: failed to append audit log: %v", err)
	}

	s.logger.Info("Update: updated slot id=%d capacity=%d enabled=%t", slot.ID, slot.Capacity, slot.Enabled)
	return slot, nil
}
