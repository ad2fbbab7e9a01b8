package offerings

import "errors"

var (
	ErrOfferingNotFound = errors.New("offerings service: offering not found")
	ErrInvalidInput     = errors.New("offerings service: invalid input")
	ErrInternal         = errors.New("offerings service: internal error")
)
