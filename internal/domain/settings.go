package domain

// Settings holds the business-wide configuration document
type Settings struct {
	BusinessName string
	Currency     string
	SlotInterval int
	// AdminPassword is stored as a bcrypt hash, never in the clear
	AdminPassword string
}

// SettingsUpdate carries the mutable settings fields for a partial update.
// AdminPassword, when set, is the new plain-text secret and is hashed before
// persisting.
type SettingsUpdate struct {
	BusinessName  *string
	Currency      *string
	SlotInterval  *int
	AdminPassword *string
}
