package domain

import "time"

// WaitlistEntry holds an overflow request that never entered the active
// booking set. The entry is owned by the waitlist until promoted, at which
// point a new booking is created and the entry is removed.
type WaitlistEntry struct {
	ID        int64
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

	AddedAt time.Time
}

// NewWaitlistEntry builds a waitlist entry from a deferred booking request
func NewWaitlistEntry(id int64, req BookingRequest, now time.Time) *WaitlistEntry {
	return &WaitlistEntry{
		ID:            id,
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
		AddedAt:       now,
	}
}

// ToBookingRequest converts the entry back into the request it was deferred
// from, for re-running admission during promotion
func (e *WaitlistEntry) ToBookingRequest() BookingRequest {
	return BookingRequest{
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		SlotID:        e.SlotID,
		ServiceID:     e.ServiceID,
		Date:          e.Date,
		PhoneVerified: e.PhoneVerified,
		Notes:         e.Notes,
		Source:        e.Source,
		Priority:      e.Priority,
	}
}
