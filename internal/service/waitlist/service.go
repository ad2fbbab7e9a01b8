package waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/eksamtint/Eksamtint/internal/domain"
	waitlistRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/waitlist"
)

// Service сервис чтения листа ожидания. Запись (добавление при переполнении
// и удаление при продвижении) происходит в usecase-ах create_booking и
// promote_waitlist под критической секцией по slotKey.
type Service struct {
	waitlistRepo WaitlistRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса листа ожидания
func NewService(waitlistRepo WaitlistRepository, logger Logger) *Service {
	return &Service{
		waitlistRepo: waitlistRepo,
		logger:       logger,
	}
}

// GetByID возвращает запись листа ожидания по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.WaitlistEntry, error) {
	entry, err := s.waitlistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
			s.logger.Warn("GetByID: waitlist entry id=%d not found", id)
			return nil, ErrEntryNotFound
		}
		s.logger.Error("GetByID: repository error for entry id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return entry, nil
}

// List возвращает все записи листа ожидания в порядке добавления
func (s *Service) List(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	entries, err := s.waitlistRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}

// CandidatesFor возвращает очередь ожидания для пары слот+дата в порядке FIFO
func (s *Service) CandidatesFor(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error) {
	entries, err := s.waitlistRepo.ListBySlotDate(ctx, slotID, date)
	if err != nil {
		s.logger.Error("CandidatesFor: repository error for slot=%d date=%s: %v", slotID, date, err)
		return nil, fmt.Errorf("%w: CandidatesFor - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}
