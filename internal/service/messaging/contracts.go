package messaging

import "context"

// TemplateRepository интерфейс хранилища шаблонов сообщений
type TemplateRepository interface {
	GetTemplates(ctx context.Context) (map[string]string, error)
	SaveTemplate(ctx context.Context, name, body string) error
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
