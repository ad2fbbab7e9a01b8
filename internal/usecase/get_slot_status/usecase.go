package get_slot_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
	slotRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/slot"
)

// UseCase use case чтения занятости слотов. Занятость всегда пересчитывается
// из живого набора бронирований, производный счетчик нигде не хранится.
type UseCase struct {
	bookingRepo  BookingRepository
	waitlistRepo WaitlistRepository
	slotRepo     SlotRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	waitlistRepo WaitlistRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		slotRepo:     slotRepo,
		logger:       logger,
	}
}

// Execute возвращает занятость одного слота на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SlotID <= 0 {
		return nil, fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("GetSlotStatus: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("GetSlotStatus: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	status, err := uc.statusFor(ctx, slot, req.Date)
	if err != nil {
		return nil, err
	}
	return &Response{Status: status}, nil
}

// ExecuteDay возвращает занятость всех слотов каталога на дату
func (uc *UseCase) ExecuteDay(ctx context.Context, req *DayRequest) (*DayResponse, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	slots, err := uc.slotRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetSlotStatus: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	statuses := make([]*SlotStatus, 0, len(slots))
	for _, slot := range slots {
		status, err := uc.statusFor(ctx, slot, req.Date)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return &DayResponse{Date: req.Date, Statuses: statuses}, nil
}

func (uc *UseCase) statusFor(ctx context.Context, slot *domain.Slot, date string) (*SlotStatus, error) {
	slotKey := domain.SlotKey(date, slot.ID)

	bookings, err := uc.bookingRepo.ListBySlotKey(ctx, slotKey)
	if err != nil {
		uc.logger.Error("GetSlotStatus: failed to list bookings for slotKey=%s: %v", slotKey, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	queue, err := uc.waitlistRepo.ListBySlotDate(ctx, slot.ID, date)
	if err != nil {
		uc.logger.Error("GetSlotStatus: failed to list waitlist for slotKey=%s: %v", slotKey, err)
		return nil, fmt.Errorf("%w: failed to list waitlist: %v", ErrInternal, err)
	}

	occ := domain.ComputeSlotOccupancy(slot, date, bookings)
	return &SlotStatus{
		SlotID:    occ.SlotID,
		Date:      occ.Date,
		Label:     occ.Label,
		Capacity:  occ.Capacity,
		Occupied:  occ.Occupied,
		Available: occ.Available,
		State:     string(occ.State),
		Waiting:   len(queue),
	}, nil
}

func validateDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	return nil
}
