package domain

// Slot represents a bookable time window with fixed capacity
type Slot struct {
	ID       int64
	Label    string // display label, e.g. "09:00 AM - 11:00 AM"
	Capacity int
	Enabled  bool
}

// SlotUpdate carries the mutable slot fields for a partial update
type SlotUpdate struct {
	Capacity *int
	Enabled  *bool
}

// SlotState is the derived availability state of a (slot, date) pair
type SlotState string

const (
	SlotStateDisabled  SlotState = "disabled"
	SlotStateFull      SlotState = "full"
	SlotStateAvailable SlotState = "available"
)

// SlotOccupancy is the real-time occupancy snapshot for a (slot, date) pair.
// It is always recomputed from the live booking set, never cached.
type SlotOccupancy struct {
	SlotID    int64
	Date      string
	Label     string
	Capacity  int
	Occupied  int
	Available int
	State     SlotState
}

// ComputeSlotOccupancy derives the occupancy of a slot on a date from a
// snapshot of the bookings bucketed under its slot key. A disabled slot
// reports zero capacity and zero occupancy.
func ComputeSlotOccupancy(slot *Slot, date string, bookings []*Booking) SlotOccupancy {
	occ := SlotOccupancy{
		SlotID: slot.ID,
		Date:   date,
		Label:  slot.Label,
	}

	if !slot.Enabled {
		occ.State = SlotStateDisabled
		return occ
	}

	key := SlotKey(date, slot.ID)
	occupied := 0
	for _, b := range bookings {
		if b.SlotKey == key && b.CountsAgainstCapacity() {
			occupied++
		}
	}

	occ.Capacity = slot.Capacity
	occ.Occupied = occupied
	occ.Available = slot.Capacity - occupied
	if occ.Available < 0 {
		occ.Available = 0
	}

	if occupied >= slot.Capacity {
		occ.State = SlotStateFull
	} else {
		occ.State = SlotStateAvailable
	}
	return occ
}

// IsFull reports whether the slot has no free spot left
func (o *SlotOccupancy) IsFull() bool {
	return o.State == SlotStateFull
}

// Bookable reports whether a new request can be admitted into the slot
func (o *SlotOccupancy) Bookable() bool {
	return o.State == SlotStateAvailable
}
