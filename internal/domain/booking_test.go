package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	cases := []struct {
		in   string
		want BookingStatus
	}{
		{"pending", StatusPending},
		{"waiting", StatusPending},
		{"confirmed", StatusConfirmed},
		{"accepted", StatusConfirmed},
		{"rejected", StatusRejected},
		{"cancelled", StatusCancelled},
	}
	for _, c := range cases {
		got, err := ParseBookingStatus(c.in)
		require.NoError(t, err, "status %q", c.in)
		assert.Equal(t, c.want, got, "status %q", c.in)
	}
}

func TestParseBookingStatus_Unknown(t *testing.T) {
	_, err := ParseBookingStatus("approved")
	require.Error(t, err)

	_, err = ParseBookingStatus("")
	require.Error(t, err)
}

func TestNewBooking_Defaults(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	b := NewBooking(42, BookingRequest{
		Name:      "Alice Smith",
		Email:     "alice@example.com",
		Phone:     "+447700900001",
		SlotID:    2,
		ServiceID: 1,
		Date:      "2026-09-20",
	}, now)

	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, "2026-09-20-2", b.SlotKey)
	assert.Equal(t, DefaultBookingSource, b.Source)
	assert.Equal(t, now, b.CreatedAt)
	assert.Equal(t, now, b.UpdatedAt)

	require.Len(t, b.History, 1)
	assert.Equal(t, StatusPending, b.History[0].Status)
	assert.Equal(t, "Booking created", b.History[0].Note)
}

func TestNewBooking_ExplicitSourceKept(t *testing.T) {
	b := NewBooking(1, BookingRequest{
		Name: "Bob", Email: "bob@example.com", Phone: "1", SlotID: 1, ServiceID: 1,
		Date: "2026-09-20", Source: "phone",
	}, time.Now().UTC())

	assert.Equal(t, "phone", b.Source)
}

func TestTransition_AppendsHistory(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	b := NewBooking(1, BookingRequest{
		Name: "Alice", Email: "a@example.com", Phone: "1", SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, now)

	later := now.Add(time.Hour)
	b.Transition(StatusConfirmed, "", later)

	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, later, b.UpdatedAt)

	// Последняя запись истории всегда совпадает с текущим статусом
	require.Len(t, b.History, 2)
	assert.Equal(t, b.Status, b.History[len(b.History)-1].Status)
	assert.Equal(t, "Status changed to confirmed", b.History[1].Note)
}

func TestStatusPredicates(t *testing.T) {
	now := time.Now().UTC()
	b := NewBooking(1, BookingRequest{
		Name: "A", Email: "a@example.com", Phone: "1", SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, now)

	// pending занимает место и блокирует дубликаты, но не терминален
	assert.True(t, b.CountsAgainstCapacity())
	assert.True(t, b.IsActive())
	assert.False(t, b.IsTerminal())

	b.Transition(StatusConfirmed, "", now)
	assert.True(t, b.CountsAgainstCapacity())
	assert.True(t, b.IsTerminal())

	b2 := NewBooking(2, BookingRequest{
		Name: "B", Email: "b@example.com", Phone: "1", SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, now)
	b2.Transition(StatusRejected, "no room", now)
	assert.False(t, b2.CountsAgainstCapacity())
	assert.False(t, b2.IsActive())
	assert.True(t, b2.IsTerminal())

	b3 := NewBooking(3, BookingRequest{
		Name: "C", Email: "c@example.com", Phone: "1", SlotID: 1, ServiceID: 1, Date: "2026-09-20",
	}, now)
	b3.Transition(StatusCancelled, "", now)
	assert.False(t, b3.CountsAgainstCapacity())
	assert.True(t, b3.IsTerminal())
}
