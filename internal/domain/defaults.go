package domain

// Seed data installed when a storage backend starts empty. The catalog
// matches the shop's original five two-hour windows.

// DefaultSlots returns the initial slot catalog
func DefaultSlots() []*Slot {
	return []*Slot{
		{ID: 1, Label: "09:00 AM - 11:00 AM", Capacity: 3, Enabled: true},
		{ID: 2, Label: "11:00 AM - 01:00 PM", Capacity: 3, Enabled: true},
		{ID: 3, Label: "01:00 PM - 03:00 PM", Capacity: 3, Enabled: true},
		{ID: 4, Label: "03:00 PM - 05:00 PM", Capacity: 3, Enabled: true},
		{ID: 5, Label: "05:00 PM - 07:00 PM", Capacity: 3, Enabled: true},
	}
}

// DefaultOfferings returns the initial services catalog
func DefaultOfferings() []*Offering {
	return []*Offering{
		{ID: 1, Name: "Window Tinting", DurationMinutes: 120, Price: 150},
		{ID: 2, Name: "Stickers & Signage", DurationMinutes: 60, Price: 80},
		{ID: 3, Name: "Headlight Tinting", DurationMinutes: 45, Price: 60},
		{ID: 4, Name: "Chameleon Tint", DurationMinutes: 120, Price: 200},
		{ID: 5, Name: "Dechrome", DurationMinutes: 180, Price: 250},
	}
}

// DefaultSettings returns the initial settings document. AdminPassword is the
// plain default secret here; callers hash it before persisting.
func DefaultSettings() *Settings {
	return &Settings{
		BusinessName:  "EKSAM TINT",
		Currency:      "£",
		SlotInterval:  30,
		AdminPassword: "admin123",
	}
}

// DefaultMessageTemplates returns the initial customer message templates
func DefaultMessageTemplates() map[string]string {
	return map[string]string{
		"bookingReceived":  "Hi {{name}}, EKSAM TINT here. We received your booking for {{service}} on {{date}} at {{time}}. It is currently PENDING approval. We will update you shortly.",
		"bookingAccepted":  "Hi {{name}}, Good news! Your booking with EKSAM TINT for {{date}} at {{time}} is CONFIRMED. See you then!",
		"bookingRejected":  "Hi {{name}}, unfortunately, we cannot fulfill your booking request for {{date}}. Reason: {{reason}}. Please contact us to reschedule.",
		"bookingCancelled": "Hi {{name}}, your booking for {{date}} has been cancelled as requested.",
	}
}
