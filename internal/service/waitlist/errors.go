package waitlist

import "errors"

var (
	ErrEntryNotFound = errors.New("waitlist service: entry not found")
	ErrInternal      = errors.New("waitlist service: internal error")
)
