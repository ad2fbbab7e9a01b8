package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
	bookingRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/booking"
)

// Service сервис жизненного цикла бронирований: чтение и переходы статусов.
// Создание бронирований живет в usecase create_booking, так как требует
// критической секции по slotKey.
type Service struct {
	bookingRepo  BookingRepository
	waitlistRepo WaitlistRepository
	auditLog     AuditLog
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// DecisionResult результат терминального перехода. PromotionCandidate
// содержит голову очереди ожидания для освободившегося места, если она есть;
// продвижение остается отдельной явной операцией.
type DecisionResult struct {
	Booking            *domain.Booking
	PromotionCandidate *domain.WaitlistEntry
}

// QueueStats свод счетчиков очереди для админ-панели
type QueueStats struct {
	Pending   int
	Confirmed int
	Rejected  int
	Total     int // все бронирования, кроме отмененных
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	waitlistRepo WaitlistRepository,
	auditLog AuditLog,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		auditLog:     auditLog,
		metrics:      metrics,
		timeProvider: &realTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// List возвращает все бронирования в порядке создания
func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// ListByStatus возвращает бронирования с заданным статусом в порядке создания
func (s *Service) ListByStatus(ctx context.Context, status string) ([]*domain.Booking, error) {
	parsed, err := domain.ParseBookingStatus(status)
	if err != nil {
		s.logger.Warn("ListByStatus: invalid status=%q", status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	bookings, err := s.bookingRepo.ListByStatus(ctx, parsed)
	if err != nil {
		s.logger.Error("ListByStatus: repository error for status=%s: %v", parsed, err)
		return nil, fmt.Errorf("%w: ListByStatus - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// Stats возвращает свод счетчиков очереди
func (s *Service) Stats(ctx context.Context) (*QueueStats, error) {
	counts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := &QueueStats{
		Pending:   counts[domain.StatusPending],
		Confirmed: counts[domain.StatusConfirmed],
		Rejected:  counts[domain.StatusRejected],
	}
	for status, n := range counts {
		if status != domain.StatusCancelled {
			stats.Total += n
		}
	}
	return stats, nil
}

// Approve подтверждает бронирование. Под выбранной политикой подсчета
// (pending уже занимает место) проверка вместимости не нужна: переход
// чисто статусный.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.getForTransition(ctx, "Approve", id)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	booking.Transition(domain.StatusConfirmed, "Booking approved", s.timeProvider.Now())
	if err := s.save(ctx, "Approve", booking); err != nil {
		return nil, err
	}

	s.audit(ctx, booking.ID, oldStatus, booking.Status)
	s.metrics.BookingDecided(string(domain.StatusConfirmed))
	s.logger.Info("Approve: booking id=%d confirmed", booking.ID)
	return booking, nil
}

// Reject отклоняет бронирование и освобождает место в слоте. Возвращает
// голову листа ожидания как возможность продвижения; само продвижение
// выполняется отдельной операцией.
func (s *Service) Reject(ctx context.Context, id int64, reason string) (*DecisionResult, error) {
	if len(reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	booking, err := s.getForTransition(ctx, "Reject", id)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	booking.RejectionReason = &reason
	booking.Transition(domain.StatusRejected, reason, s.timeProvider.Now())
	if err := s.save(ctx, "Reject", booking); err != nil {
		return nil, err
	}

	s.audit(ctx, booking.ID, oldStatus, booking.Status)
	s.metrics.BookingDecided(string(domain.StatusRejected))
	s.logger.Info("Reject: booking id=%d rejected", booking.ID)

	return &DecisionResult{
		Booking:            booking,
		PromotionCandidate: s.promotionCandidate(ctx, booking.SlotID, booking.Date),
	}, nil
}

// Cancel отменяет бронирование и освобождает место в слоте
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*DecisionResult, error) {
	if len(reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	booking, err := s.getForTransition(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	booking.CancellationReason = &reason
	booking.Transition(domain.StatusCancelled, reason, s.timeProvider.Now())
	if err := s.save(ctx, "Cancel", booking); err != nil {
		return nil, err
	}

	s.audit(ctx, booking.ID, oldStatus, booking.Status)
	s.metrics.BookingDecided(string(domain.StatusCancelled))
	s.logger.Info("Cancel: booking id=%d cancelled", booking.ID)

	return &DecisionResult{
		Booking:            booking,
		PromotionCandidate: s.promotionCandidate(ctx, booking.SlotID, booking.Date),
	}, nil
}

// Вспомогательные методы

func (s *Service) getForTransition(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.IsTerminal() {
		s.logger.Warn("%s: booking id=%d already decided, status=%s", op, id, booking.Status)
		return nil, ErrAlreadyDecided
	}
	return booking, nil
}

func (s *Service) save(ctx context.Context, op string, booking *domain.Booking) error {
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, booking.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) audit(ctx context.Context, id int64, from, to domain.BookingStatus) {
	details := fmt.Sprintf("Booking %d changed from %s to %s", id, from, to)
	if err := s.auditLog.Append(ctx, domain.AuditBookingUpdate, details); err != nil {
		s.logger.Warn("audit: failed to append log for booking id=%d: %v", id, err)
	}
}

// promotionCandidate возвращает голову очереди листа ожидания для
// освободившегося места. Ошибки поиска не фатальны для самого перехода.
func (s *Service) promotionCandidate(ctx context.Context, slotID int64, date string) *domain.WaitlistEntry {
	candidates, err := s.waitlistRepo.ListBySlotDate(ctx, slotID, date)
	if err != nil {
		s.logger.Error("promotionCandidate: failed to list waitlist for slot=%d date=%s: %v", slotID, date, err)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	head := candidates[0]
	s.logger.Info("promotionCandidate: waitlist opportunity for slot=%d date=%s entry=%d (%s)",
		slotID, date, head.ID, head.Email)
	return head
}

type realTimeProvider struct{}

func (p *realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
