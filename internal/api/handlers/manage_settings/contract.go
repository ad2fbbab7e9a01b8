package manage_settings

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, upd domain.SettingsUpdate) (*domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
