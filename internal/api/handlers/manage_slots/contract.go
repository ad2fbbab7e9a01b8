package manage_slots

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

type SlotsService interface {
	Add(ctx context.Context, label string, capacity int) (*domain.Slot, error)
	Update(ctx context.Context, id int64, update domain.SlotUpdate) (*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
