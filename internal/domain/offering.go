package domain

// Offering is a service from the business catalog that a booking is made for
type Offering struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
}
