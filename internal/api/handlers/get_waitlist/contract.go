package get_waitlist

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

type WaitlistService interface {
	List(ctx context.Context) ([]*domain.WaitlistEntry, error)
	CandidatesFor(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
