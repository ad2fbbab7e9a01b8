package jsonstore

import (
	"fmt"
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// JSON-представления документов. Имена полей camelCase, статусы хранятся
// строками и нормализуются при загрузке.

type slotDoc struct {
	ID       int64  `json:"id"`
	Time     string `json:"time"`
	Capacity int    `json:"capacity"`
	Enabled  bool   `json:"enabled"`
}

func (d slotDoc) toDomain() *domain.Slot {
	return &domain.Slot{ID: d.ID, Label: d.Time, Capacity: d.Capacity, Enabled: d.Enabled}
}

func fromDomainSlot(s *domain.Slot) slotDoc {
	return slotDoc{ID: s.ID, Time: s.Label, Capacity: s.Capacity, Enabled: s.Enabled}
}

type historyDoc struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

type bookingDoc struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	SlotID             int64        `json:"slotId"`
	ServiceID          int64        `json:"serviceId"`
	ServiceName        string       `json:"serviceName"`
	ServicePrice       float64      `json:"servicePrice"`
	Date               string       `json:"date"`
	SlotKey            string       `json:"slotKey"`
	Status             string       `json:"status"`
	PhoneVerified      bool         `json:"phoneVerified"`
	Notes              string       `json:"notes"`
	Source             string       `json:"source"`
	Priority           int          `json:"priority"`
	RejectionReason    *string      `json:"rejectionReason,omitempty"`
	CancellationReason *string      `json:"cancellationReason,omitempty"`
	History            []historyDoc `json:"history"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

func (d bookingDoc) toDomain() (*domain.Booking, error) {
	status, err := domain.ParseBookingStatus(d.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", d.ID, err)
	}

	b := &domain.Booking{
		ID:                 d.ID,
		Name:               d.Name,
		Email:              d.Email,
		Phone:              d.Phone,
		SlotID:             d.SlotID,
		ServiceID:          d.ServiceID,
		ServiceName:        d.ServiceName,
		ServicePrice:       d.ServicePrice,
		Date:               d.Date,
		SlotKey:            domain.SlotKey(d.Date, d.SlotID),
		Status:             status,
		PhoneVerified:      d.PhoneVerified,
		Notes:              d.Notes,
		Source:             d.Source,
		Priority:           d.Priority,
		RejectionReason:    d.RejectionReason,
		CancellationReason: d.CancellationReason,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
	if b.Source == "" {
		b.Source = domain.DefaultBookingSource
	}

	b.History = make([]domain.HistoryEntry, 0, len(d.History))
	for _, h := range d.History {
		hs, err := domain.ParseBookingStatus(h.Status)
		if err != nil {
			return nil, fmt.Errorf("booking %d history: %w", d.ID, err)
		}
		b.History = append(b.History, domain.HistoryEntry{Status: hs, Timestamp: h.Timestamp, Note: h.Note})
	}

	return b, nil
}

func fromDomainBooking(b *domain.Booking) bookingDoc {
	d := bookingDoc{
		ID:                 b.ID,
		Name:               b.Name,
		Email:              b.Email,
		Phone:              b.Phone,
		SlotID:             b.SlotID,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		Date:               b.Date,
		SlotKey:            b.SlotKey,
		Status:             string(b.Status),
		PhoneVerified:      b.PhoneVerified,
		Notes:              b.Notes,
		Source:             b.Source,
		Priority:           b.Priority,
		RejectionReason:    b.RejectionReason,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	d.History = make([]historyDoc, 0, len(b.History))
	for _, h := range b.History {
		d.History = append(d.History, historyDoc{Status: string(h.Status), Timestamp: h.Timestamp, Note: h.Note})
	}
	return d
}

type waitlistDoc struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	SlotID        int64     `json:"slotId"`
	ServiceID     int64     `json:"serviceId"`
	Date          string    `json:"date"`
	PhoneVerified bool      `json:"phoneVerified"`
	Notes         string    `json:"notes"`
	Source        string    `json:"source"`
	Priority      int       `json:"priority"`
	AddedAt       time.Time `json:"addedAt"`
}

func (d waitlistDoc) toDomain() *domain.WaitlistEntry {
	return &domain.WaitlistEntry{
		ID:            d.ID,
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		SlotID:        d.SlotID,
		ServiceID:     d.ServiceID,
		Date:          d.Date,
		PhoneVerified: d.PhoneVerified,
		Notes:         d.Notes,
		Source:        d.Source,
		Priority:      d.Priority,
		AddedAt:       d.AddedAt,
	}
}

func fromDomainWaitlistEntry(e *domain.WaitlistEntry) waitlistDoc {
	return waitlistDoc{
		ID:            e.ID,
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
		AddedAt:       e.AddedAt,
	}
}

type auditDoc struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

type offeringDoc struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

func (d offeringDoc) toDomain() *domain.Offering {
	return &domain.Offering{ID: d.ID, Name: d.Name, DurationMinutes: d.Duration, Price: d.Price}
}

func fromDomainOffering(o *domain.Offering) offeringDoc {
	return offeringDoc{ID: o.ID, Name: o.Name, Duration: o.DurationMinutes, Price: o.Price}
}

type settingsDoc struct {
	BusinessName  string `json:"businessName"`
	Currency      string `json:"currency"`
	SlotInterval  int    `json:"slotInterval"`
	AdminPassword string `json:"adminPassword"`
}

func (d *settingsDoc) toDomain() *domain.Settings {
	return &domain.Settings{
		BusinessName:  d.BusinessName,
		Currency:      d.Currency,
		SlotInterval:  d.SlotInterval,
		AdminPassword: d.AdminPassword,
	}
}

func fromDomainSettings(s *domain.Settings) *settingsDoc {
	return &settingsDoc{
		BusinessName:  s.BusinessName,
		Currency:      s.Currency,
		SlotInterval:  s.SlotInterval,
		AdminPassword: s.AdminPassword,
	}
}
