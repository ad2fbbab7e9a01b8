package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("settings service: settings not found")
	ErrWrongPassword    = errors.New("settings service: wrong password")
	ErrInvalidInput     = errors.New("settings service: invalid input")
	ErrInternal         = errors.New("settings service: internal error")
)
