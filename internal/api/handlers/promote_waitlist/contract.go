package promote_waitlist

import (
	"context"

	promoteWaitlist "github.com/eksamtint/Eksamtint/internal/usecase/promote_waitlist"
)

type PromoteWaitlistUseCase interface {
	Execute(ctx context.Context, req *promoteWaitlist.Request) (*promoteWaitlist.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
