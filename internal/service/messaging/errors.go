package messaging

import "errors"

var (
	ErrTemplateNotFound = errors.New("messaging service: template not found")
	ErrInvalidInput     = errors.New("messaging service: invalid input")
	ErrInternal         = errors.New("messaging service: internal error")
)
