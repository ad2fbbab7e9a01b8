package domain

// Default values applied at booking construction
const (
	DefaultBookingSource = "web"
)

// Business validation constants
const (
	MinSlotCapacity        = 0
	MaxSlotCapacity        = 100
	MaxNotesLength         = 500
	MaxReasonLength        = 500
	MaxAuditLogEntries     = 100
	MaxLabelLength         = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CountedStatuses is the set of booking statuses that consume slot capacity.
// A request counts from the moment it is queued, which is what makes approval
// a pure status change and overbooking impossible at queue time.
var CountedStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses is the set of statuses from which no transition is allowed
var TerminalStatuses = []BookingStatus{
	StatusConfirmed,
	StatusRejected,
	StatusCancelled,
}
