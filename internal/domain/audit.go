package domain

import "time"

// Audit action names, kept stable because stored logs reference them
const (
	AuditSlotUpdate     = "SLOT_UPDATE"
	AuditSlotAdd        = "SLOT_ADD"
	AuditBookingCreate  = "BOOKING_CREATE"
	AuditBookingUpdate  = "BOOKING_UPDATE"
	AuditServiceAdd     = "SERVICE_ADD"
	AuditServiceDelete  = "SERVICE_DELETE"
	AuditWaitlistAdd    = "WAITLIST_ADD"
	AuditWaitlistPromote = "WAITLIST_PROMOTE"
	AuditTemplateUpdate = "TEMPLATE_UPDATE"
	AuditSettingsUpdate = "SETTINGS_UPDATE"
)

// AuditEntry is one administrative action in the append-only audit trail
type AuditEntry struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
