package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus normalizes a status label to the canonical vocabulary.
// Legacy labels from older exports are folded in: "accepted" is the same
// state as "confirmed", "waiting" the same state as "pending".
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch s {
	case "pending", "waiting":
		return StatusPending, nil
	case "confirmed", "accepted":
		return StatusConfirmed, nil
	case "rejected":
		return StatusRejected, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// HistoryEntry is one step of a booking's own transition log
type HistoryEntry struct {
	Status    BookingStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Note      string        `json:"note"`
}

// Booking represents a customer's request for a slot on a date
type Booking struct {
	ID     int64
	Name   string
	Email  string
	Phone  string
	SlotID int64
	Date   string // YYYY-MM-DD
	// SlotKey groups bookings for capacity counting, always date + "-" + slotID
	SlotKey string
	Status  BookingStatus

	// Denormalized offering data for history
	ServiceID    int64
	ServiceName  string
	ServicePrice float64

	PhoneVerified bool
	Notes         string
	Source        string
	Priority      int

	RejectionReason    *string
	CancellationReason *string

	History   []HistoryEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingRequest carries the customer fields of an incoming request
type BookingRequest struct {
	Name      string
	Email     string
	Phone     string
	SlotID    int64
	ServiceID int64
	Date      string // YYYY-MM-DD

	PhoneVerified bool
	Notes         string
	Source        string
	Priority      int
}

// NewBooking constructs a pending booking with the named defaults applied
// exactly once. The first history entry is appended here so that the
// invariant "last history status == current status" holds from creation.
func NewBooking(id int64, req BookingRequest, now time.Time) *Booking {
	b := &Booking{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		SlotID:        req.SlotID,
		Date:          req.Date,
		SlotKey:       SlotKey(req.Date, req.SlotID),
		Status:        StatusPending,
		ServiceID:     req.ServiceID,
		PhoneVerified: req.PhoneVerified,
		Notes:         req.Notes,
		Source:        req.Source,
		Priority:      req.Priority,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if b.Source == "" {
		b.Source = DefaultBookingSource
	}
	b.History = []HistoryEntry{{Status: StatusPending, Timestamp: now, Note: "Booking created"}}
	return b
}

// SlotKey builds the composite grouping key for a (date, slot) pair
func SlotKey(date string, slotID int64) string {
	return fmt.Sprintf("%s-%d", date, slotID)
}

// Transition moves the booking to a new status and appends the matching
// history entry. Callers are responsible for checking IsTerminal first.
func (b *Booking) Transition(status BookingStatus, note string, now time.Time) {
	if note == "" {
		note = fmt.Sprintf("Status changed to %s", status)
	}
	b.Status = status
	b.History = append(b.History, HistoryEntry{Status: status, Timestamp: now, Note: note})
	b.UpdatedAt = now
}

// CountsAgainstCapacity reports whether the booking occupies a capacity spot.
// A request reserves its spot as soon as it is queued, not only once approved.
func (b *Booking) CountsAgainstCapacity() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsActive reports whether the booking blocks a duplicate request for the
// same (email, date, slot) tuple
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal reports whether no further transition is expected
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusConfirmed || b.Status == StatusRejected || b.Status == StatusCancelled
}
