package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
	offeringRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/offering"
	slotRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/slot"
)

// UseCase use case создания бронирования. Заявка на полный или отключенный
// слот не отклоняется, а уходит в лист ожидания.
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

// Execute выполняет use case создания бронирования.
// Проверка дубликата, подсчет занятости и запись выполняются в критической
// секции по slotKey, чтобы параллельные заявки не перепрыгнули вместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, slot=%d, service=%d, date=%s",
		req.Email, req.SlotID, req.ServiceID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем слот из каталога
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 4. Получаем услугу для денормализации названия и цены
	offering, err := uc.offeringRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	slotKey := domain.SlotKey(req.Date, req.SlotID)
	var result *Response

	// 5. Критическая секция по ключу слота
	err = uc.slotLocker.Do(slotKey, func() error {
		// 5.1. Проверяем дубликат: одно активное бронирование на email+слот+дату
		exists, err := uc.bookingRepo.HasActiveBooking(ctx, req.Email, req.Date, req.SlotID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check duplicates: %v", err)
			return fmt.Errorf("%w: failed to check duplicates: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: active booking already exists for email=%s, slotKey=%s",
				req.Email, slotKey)
			return ErrDuplicateBooking
		}

		// 5.2. Считаем занятость по живому набору бронирований
		bookings, err := uc.bookingRepo.ListBySlotKey(ctx, slotKey)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for slotKey=%s: %v", slotKey, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}
		occupancy := domain.ComputeSlotOccupancy(slot, req.Date, bookings)

		// 5.3. Полный или отключенный слот — заявка уходит в лист ожидания
		if !occupancy.Bookable() {
			uc.logger.Info("CreateBooking: slot %s is %s, routing to waitlist", slotKey, occupancy.State)
			return uc.addToWaitlist(ctx, req, now, &result)
		}

		// 5.4. Создаем бронирование со статусом pending
		booking := domain.NewBooking(0, uc.toBookingRequest(req), now)
		booking.ServiceName = offering.Name
		booking.ServicePrice = offering.Price

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if err := uc.auditLog.Append(ctx, domain.AuditBookingCreate,
			fmt.Sprintf("New booking %d from %s for %s slot %d", created.ID, created.Name, created.Date, created.SlotID)); err != nil {
			uc.logger.Warn("CreateBooking: failed to append audit log: %v", err)
		}
		uc.metrics.BookingCreated()

		result = &Response{
			Booking: toBookingData(created),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Waitlisted {
		uc.logger.Info("CreateBooking: request from %s waitlisted for slotKey=%s", req.Email, slotKey)
	} else {
		uc.logger.Info("CreateBooking: successfully created booking id=%d", result.Booking.ID)
	}
	return result, nil
}

// addToWaitlist переводит заявку в лист ожидания вместо активного набора
func (uc *UseCase) addToWaitlist(ctx context.Context, req *Request, now time.Time, result **Response) error {
	entry := domain.NewWaitlistEntry(0, uc.toBookingRequest(req), now)

	created, err := uc.waitlistRepo.Create(ctx, entry)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create waitlist entry: %v", err)
		return fmt.Errorf("%w: failed to create waitlist entry: %v", ErrInternal, err)
	}

	queue, err := uc.waitlistRepo.ListBySlotDate(ctx, req.SlotID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list waitlist queue: %v", err)
		return fmt.Errorf("%w: failed to list waitlist queue: %v", ErrInternal, err)
	}
	position := len(queue)
	for i, e := range queue {
		if e.ID == created.ID {
			position = i + 1
			break
		}
	}

	if err := uc.auditLog.Append(ctx, domain.AuditWaitlistAdd,
		fmt.Sprintf("Added %s to waitlist for %s slot %d", created.Name, created.Date, created.SlotID)); err != nil {
		uc.logger.Warn("CreateBooking: failed to append audit log: %v", err)
	}
	uc.metrics.BookingWaitlisted()

	*result = &Response{
		Waitlisted: true,
		Waitlist: &WaitlistData{
			ID:       created.ID,
			Name:     created.Name,
			Email:    created.Email,
			Phone:    created.Phone,
			SlotID:   created.SlotID,
			Date:     created.Date,
			Position: position,
			AddedAt:  created.AddedAt,
		},
	}
	return nil
}

func (uc *UseCase) toBookingRequest(req *Request) domain.BookingRequest {
	return domain.BookingRequest{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		SlotID:        req.SlotID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		PhoneVerified: req.PhoneVerified,
		Notes:         req.Notes,
		Source:        req.Source,
		Priority:      req.Priority,
	}
}

func toBookingData(b *domain.Booking) *BookingData {
	return &BookingData{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		SlotID:       b.SlotID,
		Date:         b.Date,
		SlotKey:      b.SlotKey,
		Status:       string(b.Status),
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		Notes:        b.Notes,
		Source:       b.Source,
		CreatedAt:    b.CreatedAt,
	}
}
