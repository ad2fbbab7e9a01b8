package get_slot_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/internal/infra/storage/jsonstore"
	"github.com/eksamtint/Eksamtint/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *jsonstore.Store) {
	t.Helper()

	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	uc := NewUseCase(store.Bookings(), store.Waitlist(), store.Slots(), nopLogger{})
	return uc, store
}

func addBooking(t *testing.T, store *jsonstore.Store, email string, status domain.BookingStatus) {
	t.Helper()

	now := time.Now().UTC()
	b := domain.NewBooking(0, domain.BookingRequest{
		Name: "Test Customer", Email: email, Phone: "+447700900001",
		SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, now)
	created, err := store.Bookings().Create(context.Background(), b)
	require.NoError(t, err)

	if status != domain.StatusPending {
		created.Transition(status, "", now)
		require.NoError(t, store.Bookings().Update(context.Background(), created))
	}
}

func TestExecute_CountsLiveBookingsOnly(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := store.Slots().Create(ctx, "09:00 AM - 11:00 AM", 3)
	require.NoError(t, err)

	addBooking(t, store, "pending@example.com", domain.StatusPending)
	addBooking(t, store, "confirmed@example.com", domain.StatusConfirmed)
	addBooking(t, store, "rejected@example.com", domain.StatusRejected)
	addBooking(t, store, "cancelled@example.com", domain.StatusCancelled)

	resp, err := uc.Execute(ctx, &Request{SlotID: 1, Date: "2026-09-20"})
	require.NoError(t, err)

	// Отклоненные и отмененные не занимают место
	assert.Equal(t, 2, resp.Status.Occupied)
	assert.Equal(t, 1, resp.Status.Available)
	assert.Equal(t, "available", resp.Status.State)
	assert.Equal(t, 0, resp.Status.Waiting)
}

func TestExecute_FullAndWaiting(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := store.Slots().Create(ctx, "09:00 AM - 11:00 AM", 2)
	require.NoError(t, err)

	addBooking(t, store, "a@example.com", domain.StatusPending)
	addBooking(t, store, "b@example.com", domain.StatusConfirmed)

	entry := domain.NewWaitlistEntry(0, domain.BookingRequest{
		Name: "Waiting", Email: "w@example.com", Phone: "+447700900009",
		SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, time.Now().UTC())
	_, err = store.Waitlist().Create(ctx, entry)
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{SlotID: 1, Date: "2026-09-20"})
	require.NoError(t, err)

	assert.Equal(t, "full", resp.Status.State)
	assert.Equal(t, 0, resp.Status.Available)
	assert.Equal(t, 1, resp.Status.Waiting)
}

func TestExecute_DisabledSlot(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := store.Slots().Create(ctx, "09:00 AM - 11:00 AM", 3)
	require.NoError(t, err)
	_, err = store.Slots().Update(ctx, 1, domain.SlotUpdate{Enabled: ptr.Ptr(false)})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{SlotID: 1, Date: "2026-09-20"})
	require.NoError(t, err)
	assert.Equal(t, "disabled", resp.Status.State)
	assert.Equal(t, 0, resp.Status.Available)
}

func TestExecuteDay(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := store.Slots().Create(ctx, "09:00 AM - 11:00 AM", 3)
	require.NoError(t, err)
	_, err = store.Slots().Create(ctx, "11:00 AM - 01:00 PM", 3)
	require.NoError(t, err)

	addBooking(t, store, "a@example.com", domain.StatusPending)

	resp, err := uc.ExecuteDay(ctx, &DayRequest{Date: "2026-09-20"})
	require.NoError(t, err)

	require.Len(t, resp.Statuses, 2)
	assert.Equal(t, 1, resp.Statuses[0].Occupied)
	assert.Equal(t, 0, resp.Statuses[1].Occupied)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SlotID: 0, Date: "2026-09-20"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{SlotID: 1, Date: "20-09-2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{SlotID: 42, Date: "2026-09-20"})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
