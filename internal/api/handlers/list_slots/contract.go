package list_slots

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

type SlotsService interface {
	List(ctx context.Context) ([]*domain.Slot, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
