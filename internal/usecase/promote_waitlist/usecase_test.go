package promote_waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/internal/infra/storage/jsonstore"
	"github.com/eksamtint/Eksamtint/pkg/keylock"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	promoted int
	refused  int
}

func (m *fakeMetrics) WaitlistPromoted()         { m.promoted++ }
func (m *fakeMetrics) WaitlistPromotionRefused() { m.refused++ }

func newTestUseCase(t *testing.T, capacity int) (*UseCase, *jsonstore.Store, *fakeMetrics) {
	t.Helper()

	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = store.Slots().Create(ctx, "09:00 AM - 11:00 AM", capacity)
	require.NoError(t, err)
	_, err = store.Offerings().Create(ctx, "Window Tinting", 120, 150)
	require.NoError(t, err)

	m := &fakeMetrics{}
	uc := NewUseCase(
		store.Bookings(),
		store.Waitlist(),
		store.Slots(),
		store.Offerings(),
		store.AuditLogs(),
		keylock.New(),
		m,
		nopLogger{},
	)
	return uc, store, m
}

func addEntry(t *testing.T, store *jsonstore.Store, email string) *domain.WaitlistEntry {
	t.Helper()

	entry := domain.NewWaitlistEntry(0, domain.BookingRequest{
		Name:      "Waiting Customer",
		Email:     email,
		Phone:     "+447700900002",
		SlotID:    1,
		ServiceID: 1,
		Date:      "2026-09-20",
	}, time.Now().UTC())

	created, err := store.Waitlist().Create(context.Background(), entry)
	require.NoError(t, err)
	return created
}

func addBooking(t *testing.T, store *jsonstore.Store, email string) *domain.Booking {
	t.Helper()

	b := domain.NewBooking(0, domain.BookingRequest{
		Name:      "Existing Customer",
		Email:     email,
		Phone:     "+447700900003",
		SlotID:    1,
		ServiceID: 1,
		Date:      "2026-09-20",
	}, time.Now().UTC())

	created, err := store.Bookings().Create(context.Background(), b)
	require.NoError(t, err)
	return created
}

func TestExecute_PromotesEntry(t *testing.T) {
	uc, store, m := newTestUseCase(t, 2)
	ctx := context.Background()

	entry := addEntry(t, store, "waiting@example.com")

	resp, err := uc.Execute(ctx, &Request{EntryID: entry.ID})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-09-20-1", resp.SlotKey)
	assert.Equal(t, "Window Tinting", resp.ServiceName)
	assert.Equal(t, 150.0, resp.ServicePrice)
	assert.Equal(t, 1, m.promoted)

	// Запись ушла из листа ожидания, бронирование появилось
	entries, err := store.Waitlist().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	booking, err := store.Bookings().GetByID(ctx, resp.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "waiting@example.com", booking.Email)
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestExecute_RefusesWhenSlotStillFull(t *testing.T) {
	uc, store, m := newTestUseCase(t, 1)
	ctx := context.Background()

	addBooking(t, store, "occupant@example.com")
	entry := addEntry(t, store, "waiting@example.com")

	_, err := uc.Execute(ctx, &Request{EntryID: entry.ID})
	require.ErrorIs(t, err, ErrSlotStillFull)
	assert.Equal(t, 1, m.refused)
	assert.Equal(t, 0, m.promoted)

	// Запись остается в очереди, набор бронирований не изменился
	entries, err := store.Waitlist().List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)

	bookings, err := store.Bookings().List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestExecute_RefusesDuplicate(t *testing.T) {
	uc, store, _ := newTestUseCase(t, 3)
	ctx := context.Background()

	// Клиент успел забронировать сам, пока запись ждала
	addBooking(t, store, "waiting@example.com")
	entry := addEntry(t, store, "waiting@example.com")

	_, err := uc.Execute(ctx, &Request{EntryID: entry.ID})
	require.ErrorIs(t, err, ErrDuplicateBooking)

	entries, err := store.Waitlist().List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExecute_UnknownEntry(t *testing.T) {
	uc, _, _ := newTestUseCase(t, 1)

	_, err := uc.Execute(context.Background(), &Request{EntryID: 12345})
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestExecute_DeletedOfferingStillPromotes(t *testing.T) {
	uc, store, _ := newTestUseCase(t, 1)
	ctx := context.Background()

	entry := addEntry(t, store, "waiting@example.com")
	require.NoError(t, store.Offerings().Delete(ctx, 1))

	resp, err := uc.Execute(ctx, &Request{EntryID: entry.ID})
	require.NoError(t, err)
	assert.Empty(t, resp.ServiceName)
	assert.Zero(t, resp.ServicePrice)
}
