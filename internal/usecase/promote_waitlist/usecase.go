package promote_waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/eksamtint/Eksamtint/internal/domain"
	offeringRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/offering"
	slotRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/slot"
	waitlistRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/waitlist"
)

// UseCase use case явного продвижения записи листа ожидания в бронирование.
// Продвижение никогда не происходит автоматически: освобождение места лишь
// подсказывает оператору кандидата, решение остается за ним.
type UseCase struct {
	bookingRepo  BookingRepository
	waitlistRepo WaitlistRepository
	slotRepo     SlotRepository
	offeringRepo OfferingRepository
	auditLog     AuditLog
	slotLocker   SlotLocker
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	waitlistRepo WaitlistRepository,
	slotRepo SlotRepository,
	offeringRepo OfferingRepository,
	auditLog AuditLog,
	slotLocker SlotLocker,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		slotRepo:     slotRepo,
		offeringRepo: offeringRepo,
		auditLog:     auditLog,
		slotLocker:   slotLocker,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет продвижение. Проверка вместимости и запись проходят под
// тем же ключом слота, что и создание бронирования, так что продвижение не
// может перепрыгнуть вместимость наперегонки с новой заявкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PromoteWaitlist: entry=%d", req.EntryID)

	// 1. Получаем запись листа ожидания
	entry, err := uc.waitlistRepo.GetByID(ctx, req.EntryID)
	if err != nil {
		if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
			uc.logger.Warn("PromoteWaitlist: entry id=%d not found", req.EntryID)
			return nil, ErrEntryNotFound
		}
		uc.logger.Error("PromoteWaitlist: failed to get entry id=%d: %v", req.EntryID, err)
		return nil, fmt.Errorf("%w: failed to get entry: %v", ErrInternal, err)
	}

	// 2. Получаем слот записи
	slot, err := uc.slotRepo.GetByID(ctx, entry.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("PromoteWaitlist: slot id=%d not found", entry.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("PromoteWaitlist: failed to get slot id=%d: %v", entry.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Получаем услугу для денормализации
	var serviceName string
	var servicePrice float64
	offering, err := uc.offeringRepo.GetByID(ctx, entry.ServiceID)
	switch {
	case err == nil:
		serviceName = offering.Name
		servicePrice = offering.Price
	case errors.Is(err, offeringRepo.ErrOfferingNotFound):
		// Услугу могли удалить, пока запись ждала. Продвижение важнее
		// денормализации, бронирование создается без названия и цены.
		uc.logger.Warn("PromoteWaitlist: service id=%d no longer exists", entry.ServiceID)
	default:
		uc.logger.Error("PromoteWaitlist: failed to get service id=%d: %v", entry.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	slotKey := domain.SlotKey(entry.Date, entry.SlotID)
	var result *Response

	// 4. Критическая секция по ключу слота
	err = uc.slotLocker.Do(slotKey, func() error {
		// 4.1. Пересчитываем занятость: место должно быть свободно сейчас
		bookings, err := uc.bookingRepo.ListBySlotKey(ctx, slotKey)
		if err != nil {
			uc.logger.Error("PromoteWaitlist: failed to list bookings for slotKey=%s: %v", slotKey, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}
		occupancy := domain.ComputeSlotOccupancy(slot, entry.Date, bookings)
		if !occupancy.Bookable() {
			uc.logger.Warn("PromoteWaitlist: slot %s is %s, promotion refused", slotKey, occupancy.State)
			uc.metrics.WaitlistPromotionRefused()
			return ErrSlotStillFull
		}

		// 4.2. Проверяем, что клиент не забронировал сам, пока ждал
		exists, err := uc.bookingRepo.HasActiveBooking(ctx, entry.Email, entry.Date, entry.SlotID)
		if err != nil {
			uc.logger.Error("PromoteWaitlist: failed to check duplicates: %v", err)
			return fmt.Errorf("%w: failed to check duplicates: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("PromoteWaitlist: active booking already exists for email=%s, slotKey=%s",
				entry.Email, slotKey)
			return ErrDuplicateBooking
		}

		// 4.3. Создаем бронирование из отложенной заявки
		booking := domain.NewBooking(0, entry.ToBookingRequest(), now)
		booking.ServiceName = serviceName
		booking.ServicePrice = servicePrice

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			uc.logger.Error("PromoteWaitlist: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 4.4. Убираем запись из листа ожидания
		if err := uc.waitlistRepo.Delete(ctx, entry.ID); err != nil {
			uc.logger.Error("PromoteWaitlist: failed to delete entry id=%d: %v", entry.ID, err)
			return fmt.Errorf("%w: failed to delete entry: %v", ErrInternal, err)
		}

		if err := uc.auditLog.Append(ctx, domain.AuditWaitlistPromote,
			fmt.Sprintf("Promoted %s from waitlist to booking %d", created.Name, created.ID)); err != nil {
			uc.logger.Warn("PromoteWaitlist: failed to append audit log: %v", err)
		}
		uc.metrics.WaitlistPromoted()

		result = &Response{
			BookingID:    created.ID,
			Name:         created.Name,
			Email:        created.Email,
			Phone:        created.Phone,
			SlotID:       created.SlotID,
			Date:         created.Date,
			SlotKey:      created.SlotKey,
			Status:       string(created.Status),
			ServiceID:    created.ServiceID,
			ServiceName:  created.ServiceName,
			ServicePrice: created.ServicePrice,
			CreatedAt:    created.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("PromoteWaitlist: entry %d promoted to booking %d", req.EntryID, result.BookingID)
	return result, nil
}
