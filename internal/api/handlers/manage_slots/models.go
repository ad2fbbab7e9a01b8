package manage_slots

import "github.com/eksamtint/Eksamtint/internal/domain"

// AddSlotRequest HTTP request model
type AddSlotRequest struct {
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
}

// UpdateSlotRequest HTTP request model для частичного обновления
type UpdateSlotRequest struct {
	Capacity *int  `json:"capacity,omitempty"`
	Enabled  *bool `json:"enabled,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	Success  bool   `json:"success"`
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
	Enabled  bool   `json:"enabled"`
}

// ToUpdate конвертирует HTTP запрос в доменную модель обновления
func (r *UpdateSlotRequest) ToUpdate() domain.SlotUpdate {
	return domain.SlotUpdate{
		Capacity: r.Capacity,
		Enabled:  r.Enabled,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		Success:  true,
		ID:       s.ID,
		Label:    s.Label,
		Capacity: s.Capacity,
		Enabled:  s.Enabled,
	}
}
