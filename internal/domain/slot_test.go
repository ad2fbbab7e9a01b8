package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func makeBooking(id int64, email string, slotID int64, date string, status BookingStatus) *Booking {
	now := time.Now().UTC()
	b := NewBooking(id, BookingRequest{
		Name: "Customer", Email: email, Phone: "1", SlotID: slotID, ServiceID: 1, Date: date,
	}, now)
	if status != StatusPending {
		b.Transition(status, "", now)
	}
	return b
}

func TestComputeSlotOccupancy_CountsPendingAndConfirmed(t *testing.T) {
	slot := &Slot{ID: 2, Label: "11:00 AM - 01:00 PM", Capacity: 3, Enabled: true}
	date := "2026-09-20"

	bookings := []*Booking{
		makeBooking(1, "a@example.com", 2, date, StatusPending),
		makeBooking(2, "b@example.com", 2, date, StatusConfirmed),
		makeBooking(3, "c@example.com", 2, date, StatusRejected),
		makeBooking(4, "d@example.com", 2, date, StatusCancelled),
		// другой слот и другая дата не попадают в корзину
		makeBooking(5, "e@example.com", 3, date, StatusPending),
		makeBooking(6, "f@example.com", 2, "2026-09-21", StatusPending),
	}

	occ := ComputeSlotOccupancy(slot, date, bookings)

	assert.Equal(t, 2, occ.Occupied)
	assert.Equal(t, 1, occ.Available)
	assert.Equal(t, SlotStateAvailable, occ.State)
	assert.True(t, occ.Bookable())
}

func TestComputeSlotOccupancy_Full(t *testing.T) {
	slot := &Slot{ID: 1, Label: "09:00 AM - 11:00 AM", Capacity: 2, Enabled: true}
	date := "2026-09-20"

	bookings := []*Booking{
		makeBooking(1, "a@example.com", 1, date, StatusPending),
		makeBooking(2, "b@example.com", 1, date, StatusConfirmed),
	}

	occ := ComputeSlotOccupancy(slot, date, bookings)

	assert.Equal(t, SlotStateFull, occ.State)
	assert.Equal(t, 0, occ.Available)
	assert.True(t, occ.IsFull())
	assert.False(t, occ.Bookable())
}

func TestComputeSlotOccupancy_Disabled(t *testing.T) {
	slot := &Slot{ID: 1, Label: "09:00 AM - 11:00 AM", Capacity: 3, Enabled: false}

	occ := ComputeSlotOccupancy(slot, "2026-09-20", []*Booking{
		makeBooking(1, "a@example.com", 1, "2026-09-20", StatusPending),
	})

	assert.Equal(t, SlotStateDisabled, occ.State)
	assert.Equal(t, 0, occ.Capacity)
	assert.Equal(t, 0, occ.Occupied)
	assert.False(t, occ.Bookable())
}

func TestComputeSlotOccupancy_AvailableNeverNegative(t *testing.T) {
	// Вместимость могли уменьшить уже после приема бронирований
	slot := &Slot{ID: 1, Label: "09:00 AM - 11:00 AM", Capacity: 1, Enabled: true}
	date := "2026-09-20"

	bookings := []*Booking{
		makeBooking(1, "a@example.com", 1, date, StatusPending),
		makeBooking(2, "b@example.com", 1, date, StatusConfirmed),
		makeBooking(3, "c@example.com", 1, date, StatusConfirmed),
	}

	occ := ComputeSlotOccupancy(slot, date, bookings)

	assert.Equal(t, 3, occ.Occupied)
	assert.Equal(t, 0, occ.Available)
	assert.Equal(t, SlotStateFull, occ.State)
}

func TestSlotKey(t *testing.T) {
	assert.Equal(t, "2026-09-20-3", SlotKey("2026-09-20", 3))
}
