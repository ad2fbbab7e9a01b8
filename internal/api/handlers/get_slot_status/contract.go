package get_slot_status

import (
	"context"

	getSlotStatus "github.com/eksamtint/Eksamtint/internal/usecase/get_slot_status"
)

type GetSlotStatusUseCase interface {
	Execute(ctx context.Context, req *getSlotStatus.Request) (*getSlotStatus.Response, error)
	ExecuteDay(ctx context.Context, req *getSlotStatus.DayRequest) (*getSlotStatus.DayResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
