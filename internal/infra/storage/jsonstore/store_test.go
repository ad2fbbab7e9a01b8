package jsonstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eksamtint/Eksamtint/internal/domain"
	bookingRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/booking"
	settingsRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/settings"
	slotRepo "github.com/eksamtint/Eksamtint/internal/infra/storage/slot"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	now := time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)

	store, err := Open(dir)
	require.NoError(t, err)

	slot, err := store.Slots().Create(ctx, "09:00 AM - 11:00 AM", 3)
	require.NoError(t, err)

	offering, err := store.Offerings().Create(ctx, "Window Tinting", 120, 150)
	require.NoError(t, err)

	booking, err := store.Bookings().Create(ctx, domain.NewBooking(0, domain.BookingRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Phone:     "+447700900001",
		SlotID:    slot.ID,
		ServiceID: offering.ID,
		Date:      "2026-09-20",
		Notes:     "side windows only",
	}, now))
	require.NoError(t, err)

	entry, err := store.Waitlist().Create(ctx, domain.NewWaitlistEntry(0, domain.BookingRequest{
		Name:      "Bob",
		Email:     "bob@example.com",
		Phone:     "+447700900002",
		SlotID:    slot.ID,
		ServiceID: offering.ID,
		Date:      "2026-09-20",
	}, now))
	require.NoError(t, err)

	require.NoError(t, store.AuditLogs().Append(ctx, domain.AuditBookingCreate, "New booking from Alice"))
	require.NoError(t, store.Settings().SaveSettings(ctx, &domain.Settings{
		BusinessName:  "EKSAM TINT",
		Currency:      "£",
		SlotInterval:  120,
		AdminPassword: "$2a$10$notarealhash",
	}))
	require.NoError(t, store.Settings().SaveTemplate(ctx, "bookingAccepted", "Hi {{name}}"))

	// Переоткрываем хранилище и проверяем, что все документы пережили рестарт
	reopened, err := Open(dir)
	require.NoError(t, err)

	gotSlot, err := reopened.Slots().GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, slot.Label, gotSlot.Label)
	assert.Equal(t, 3, gotSlot.Capacity)
	assert.True(t, gotSlot.Enabled)

	gotBooking, err := reopened.Bookings().GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", gotBooking.Email)
	assert.Equal(t, domain.StatusPending, gotBooking.Status)
	assert.Equal(t, booking.SlotKey, gotBooking.SlotKey)
	assert.Equal(t, "side windows only", gotBooking.Notes)
	require.Len(t, gotBooking.History, 1)
	assert.True(t, gotBooking.History[0].Timestamp.Equal(now))

	gotEntry, err := reopened.Waitlist().GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", gotEntry.Email)

	offerings, err := reopened.Offerings().List(ctx)
	require.NoError(t, err)
	require.Len(t, offerings, 1)
	assert.Equal(t, "Window Tinting", offerings[0].Name)
	assert.Equal(t, 120, offerings[0].DurationMinutes)

	logs, err := reopened.AuditLogs().List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.AuditBookingCreate, logs[0].Action)

	settings, err := reopened.Settings().GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EKSAM TINT", settings.BusinessName)
	assert.Equal(t, 120, settings.SlotInterval)

	templates, err := reopened.Settings().GetTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hi {{name}}", templates["bookingAccepted"])
}

func TestUpdateBookingPersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	now := time.Now().UTC()

	store, err := Open(dir)
	require.NoError(t, err)

	booking, err := store.Bookings().Create(ctx, domain.NewBooking(0, domain.BookingRequest{
		Name: "Alice", Email: "alice@example.com", Phone: "+447700900001",
		SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, now))
	require.NoError(t, err)

	booking.Transition(domain.StatusConfirmed, "Booking approved", now.Add(time.Minute))
	require.NoError(t, store.Bookings().Update(ctx, booking))

	reopened, err := Open(dir)
	require.NoError(t, err)

	got, err := reopened.Bookings().GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	require.Len(t, got.History, 2)
}

func TestEmptyStoreSentinels(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Slots().GetByID(ctx, 1)
	assert.ErrorIs(t, err, slotRepo.ErrSlotNotFound)

	_, err = store.Bookings().GetByID(ctx, 1)
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)

	_, err = store.Settings().GetSettings(ctx)
	assert.ErrorIs(t, err, settingsRepo.ErrSettingsNotFound)
}

func TestNextIDCollisions(t *testing.T) {
	taken := map[int64]bool{100: true, 101: true}
	id := nextID(100, func(id int64) bool { return taken[id] })
	assert.Equal(t, int64(102), id)

	id = nextID(200, func(int64) bool { return false })
	assert.Equal(t, int64(200), id)
}

func TestBookingsSameMillisecondGetDistinctIDs(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	now := time.Now().UTC()

	first, err := store.Bookings().Create(ctx, domain.NewBooking(0, domain.BookingRequest{
		Name: "Alice", Email: "alice@example.com", Phone: "+447700900001",
		SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, now))
	require.NoError(t, err)

	second, err := store.Bookings().Create(ctx, domain.NewBooking(0, domain.BookingRequest{
		Name: "Bob", Email: "bob@example.com", Phone: "+447700900002",
		SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, now))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
