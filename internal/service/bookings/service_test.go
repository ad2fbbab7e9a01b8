package bookings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/internal/infra/storage/jsonstore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	decided map[string]int
}

func (m *fakeMetrics) BookingDecided(status string) {
	if m.decided == nil {
		m.decided = map[string]int{}
	}
	m.decided[status]++
}

func newTestService(t *testing.T) (*Service, *jsonstore.Store, *fakeMetrics) {
	t.Helper()

	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	m := &fakeMetrics{}
	svc := NewService(store.Bookings(), store.Waitlist(), store.AuditLogs(), m, nopLogger{})
	return svc, store, m
}

func addBooking(t *testing.T, store *jsonstore.Store, email string) *domain.Booking {
	t.Helper()

	b := domain.NewBooking(0, domain.BookingRequest{
		Name:      "Test Customer",
		Email:     email,
		Phone:     "+447700900001",
		SlotID:    1,
		ServiceID: 1,
		Date:      "2026-09-20",
	}, time.Now().UTC())

	created, err := store.Bookings().Create(context.Background(), b)
	require.NoError(t, err)
	return created
}

func TestApprove(t *testing.T) {
	svc, store, m := newTestService(t)
	ctx := context.Background()

	booking := addBooking(t, store, "alice@example.com")

	approved, err := svc.Approve(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, approved.Status)
	assert.Equal(t, 1, m.decided["confirmed"])

	stored, err := store.Bookings().GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	require.Len(t, stored.History, 2)
	assert.Equal(t, "Booking approved", stored.History[1].Note)
}

func TestReject_SetsReason(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	booking := addBooking(t, store, "alice@example.com")

	result, err := svc.Reject(ctx, booking.ID, "fully booked elsewhere")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, result.Booking.Status)
	require.NotNil(t, result.Booking.RejectionReason)
	assert.Equal(t, "fully booked elsewhere", *result.Booking.RejectionReason)
	assert.Nil(t, result.PromotionCandidate)
}

func TestDecision_RefusedOnTerminalBooking(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	booking := addBooking(t, store, "alice@example.com")
	_, err := svc.Approve(ctx, booking.ID)
	require.NoError(t, err)

	// Терминальный статус не допускает повторных решений
	_, err = svc.Approve(ctx, booking.ID)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	_, err = svc.Reject(ctx, booking.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	_, err = svc.Cancel(ctx, booking.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestCancel_SurfacesPromotionCandidate(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	booking := addBooking(t, store, "alice@example.com")

	first := domain.NewWaitlistEntry(0, domain.BookingRequest{
		Name: "First In Line", Email: "first@example.com", Phone: "+447700900002",
		SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, time.Now().UTC().Add(-time.Minute))
	firstCreated, err := store.Waitlist().Create(ctx, first)
	require.NoError(t, err)

	second := domain.NewWaitlistEntry(0, domain.BookingRequest{
		Name: "Second In Line", Email: "second@example.com", Phone: "+447700900003",
		SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, time.Now().UTC())
	_, err = store.Waitlist().Create(ctx, second)
	require.NoError(t, err)

	result, err := svc.Cancel(ctx, booking.ID, "customer asked")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Booking.Status)

	// Кандидат только подсказывается, очередь не меняется
	require.NotNil(t, result.PromotionCandidate)
	assert.Equal(t, firstCreated.ID, result.PromotionCandidate.ID)

	entries, err := store.Waitlist().List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReject_ReasonTooLong(t *testing.T) {
	svc, store, _ := newTestService(t)
	booking := addBooking(t, store, "alice@example.com")

	long := make([]byte, domain.MaxReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err := svc.Reject(context.Background(), booking.ID, string(long))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByStatus_NormalizesLegacyNames(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	booking := addBooking(t, store, "alice@example.com")
	_, err := svc.Approve(ctx, booking.ID)
	require.NoError(t, err)
	addBooking(t, store, "bob@example.com")

	// Историческое имя accepted трактуется как confirmed
	confirmed, err := svc.ListByStatus(ctx, "accepted")
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "alice@example.com", confirmed[0].Email)

	pending, err := svc.ListByStatus(ctx, "waiting")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "bob@example.com", pending[0].Email)

	_, err = svc.ListByStatus(ctx, "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStats_ExcludesCancelledFromTotal(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		addBooking(t, store, fmt.Sprintf("pending%d@example.com", i))
	}
	confirmed := addBooking(t, store, "confirmed@example.com")
	_, err := svc.Approve(ctx, confirmed.ID)
	require.NoError(t, err)
	rejected := addBooking(t, store, "rejected@example.com")
	_, err = svc.Reject(ctx, rejected.ID, "")
	require.NoError(t, err)
	cancelled := addBooking(t, store, "cancelled@example.com")
	_, err = svc.Cancel(ctx, cancelled.ID, "")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 4, stats.Total)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
