package get_slot_status

import (
	getSlotStatus "github.com/eksamtint/Eksamtint/internal/usecase/get_slot_status"
)

// SlotStatusResponse занятость одного слота на дату
type SlotStatusResponse struct {
	SlotID    int64  `json:"slotId"`
	Date      string `json:"date"`
	Label     string `json:"label"`
	Capacity  int    `json:"capacity"`
	Occupied  int    `json:"occupied"`
	Available int    `json:"available"`
	State     string `json:"state"`
	Waiting   int    `json:"waiting"`
}

// DayStatusResponse занятость всех слотов каталога на дату
type DayStatusResponse struct {
	Date  string                `json:"date"`
	Slots []*SlotStatusResponse `json:"slots"`
}

func fromStatus(s *getSlotStatus.SlotStatus) *SlotStatusResponse {
	return &SlotStatusResponse{
		SlotID:    s.SlotID,
		Date:      s.Date,
		Label:     s.Label,
		Capacity:  s.Capacity,
		Occupied:  s.Occupied,
		Available: s.Available,
		State:     s.State,
		Waiting:   s.Waiting,
	}
}

// FromDayResponse конвертирует ответ use case в HTTP response
func FromDayResponse(resp *getSlotStatus.DayResponse) *DayStatusResponse {
	slots := make([]*SlotStatusResponse, 0, len(resp.Statuses))
	for _, s := range resp.Statuses {
		slots = append(slots, fromStatus(s))
	}
	return &DayStatusResponse{
		Date:  resp.Date,
		Slots: slots,
	}
}
