package settings

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// SettingsRepository интерфейс хранилища настроек бизнеса
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, s *domain.Settings) error
}

// AuditLog интерфейс журнала административных действий
type AuditLog interface {
	Append(ctx context.Context, action, details string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
