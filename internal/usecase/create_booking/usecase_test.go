package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/internal/infra/storage/jsonstore"
	"github.com/eksamtint/Eksamtint/pkg/keylock"
	"github.com/eksamtint/Eksamtint/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	created    int
	waitlisted int
}

func (m *fakeMetrics) BookingCreated()    { m.created++ }
func (m *fakeMetrics) BookingWaitlisted() { m.waitlisted++ }

func newTestUseCase(t *testing.T) (*UseCase, *jsonstore.Store, *fakeMetrics) {
	t.Helper()

	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = store.Slots().Create(ctx, "09:00 AM - 11:00 AM", 3)
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

func validRequest(email string) *Request {
	return &Request{
		Name:      "Test Customer",
		Email:     email,
		Phone:     "+447700900001",
		SlotID:    1,
		ServiceID: 1,
		Date:      "2026-09-20",
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	uc, store, m := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest("alice@example.com"))
	require.NoError(t, err)

	require.False(t, resp.Waitlisted)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "pending", resp.Booking.Status)
	assert.Equal(t, "2026-09-20-1", resp.Booking.SlotKey)
	assert.Equal(t, "Window Tinting", resp.Booking.ServiceName)
	assert.Equal(t, 150.0, resp.Booking.ServicePrice)
	assert.Equal(t, domain.DefaultBookingSource, resp.Booking.Source)
	assert.Equal(t, 1, m.created)

	stored, err := store.Bookings().GetByID(context.Background(), resp.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	require.Len(t, stored.History, 1)
}

func TestExecute_FullSlotRoutesToWaitlist(t *testing.T) {
	uc, store, m := newTestUseCase(t)
	ctx := context.Background()

	// Заполняем слот вместимости 3
	for i := 0; i < 3; i++ {
		resp, err := uc.Execute(ctx, validRequest(fmt.Sprintf("user%d@example.com", i)))
		require.NoError(t, err)
		require.False(t, resp.Waitlisted)
	}

	// Четвертая заявка не отклоняется, а уходит в лист ожидания
	resp, err := uc.Execute(ctx, validRequest("overflow@example.com"))
	require.NoError(t, err)
	require.True(t, resp.Waitlisted)
	require.NotNil(t, resp.Waitlist)
	assert.Equal(t, 1, resp.Waitlist.Position)
	assert.Equal(t, 1, m.waitlisted)

	// Активный набор не вырос
	bookings, err := store.Bookings().List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 3)

	entries, err := store.Waitlist().List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "overflow@example.com", entries[0].Email)
}

func TestExecute_DisabledSlotRoutesToWaitlist(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := store.Slots().Update(ctx, 1, domain.SlotUpdate{Enabled: ptr.Ptr(false)})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, validRequest("alice@example.com"))
	require.NoError(t, err)
	assert.True(t, resp.Waitlisted)
}

func TestExecute_DuplicateRejected(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest("alice@example.com"))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validRequest("alice@example.com"))
	require.ErrorIs(t, err, ErrDuplicateBooking)

	bookings, err := store.Bookings().List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.Name = " " }},
		{"missing email", func(r *Request) { r.Email = "" }},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"missing phone", func(r *Request) { r.Phone = "" }},
		{"bad date", func(r *Request) { r.Date = "20/09/2026" }},
		{"missing date", func(r *Request) { r.Date = "" }},
	}
	for _, c := range cases {
		req := validRequest("alice@example.com")
		c.mutate(req)
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput, c.name)
	}
}

func TestExecute_UnknownSlotAndService(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	req := validRequest("alice@example.com")
	req.SlotID = 99
	_, err := uc.Execute(ctx, req)
	require.ErrorIs(t, err, ErrSlotNotFound)

	req = validRequest("alice@example.com")
	req.ServiceID = 99
	_, err = uc.Execute(ctx, req)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_FixedClock(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	now := time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)
	uc.timeProvider = fixedTime{now}

	resp, err := uc.Execute(context.Background(), validRequest("alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, now, resp.Booking.CreatedAt)
	assert.Equal(t, now.UnixMilli(), resp.Booking.ID)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }
