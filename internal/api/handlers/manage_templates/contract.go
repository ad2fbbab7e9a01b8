package manage_templates

import "context"

type MessagingService interface {
	ListTemplates(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, name, body string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
