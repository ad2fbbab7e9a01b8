package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// Service сервис шаблонов клиентских сообщений. Шаблоны хранят плейсхолдеры
// вида {{name}}, {{date}}, {{slot}}; Render подставляет значения без экранирования.
type Service struct {
	templateRepo TemplateRepository
	auditLog     AuditLog
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов сообщений
func NewService(templateRepo TemplateRepository, auditLog AuditLog, logger Logger) *Service {
	return &Service{
		templateRepo: templateRepo,
		auditLog:     auditLog,
		logger:       logger,
	}
}

// ListTemplates возвращает все шаблоны по именам
func (s *Service) ListTemplates(ctx context.Context) (map[string]string, error) {
	templates, err := s.templateRepo.GetTemplates(ctx)
	if err != nil {
		s.logger.Error("ListTemplates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTemplates - repository error: %v", ErrInternal, err)
	}
	return templates, nil
}

// Update сохраняет новое тело шаблона. Существование шаблона обязательно:
// набор имен фиксирован посевом, опечатка в имени не должна создавать
// новый шаблон молча.
func (s *Service) Update(ctx context.Context, name, body string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: template name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: template body is required", ErrInvalidInput)
	}

	templates, err := s.templateRepo.GetTemplates(ctx)
	if err != nil {
		s.logger.Error("Update: repository error for template %q: %v", name, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}
	if _, ok := templates[name]; !ok {
		s.logger.Warn("Update: template %q not found", name)
		return ErrTemplateNotFound
	}

	if err := s.templateRepo.SaveTemplate(ctx, name, body); err != nil {
		s.logger.Error("Update: repository error for template %q: %v", name, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.auditLog.Append(ctx, domain.AuditTemplateUpdate, fmt.Sprintf("Updated message template: %s", name)); err != nil {
		s.logger.Warn("Update: failed to append audit log for template %q: %v", name, err)
	}

	s.logger.Info("Update: template %q updated", name)
	return nil
}

// Render возвращает шаблон с подставленными значениями плейсхолдеров
func (s *Service) Render(ctx context.Context, name string, values map[string]string) (string, error) {
	templates, err := s.templateRepo.GetTemplates(ctx)
	if err != nil {
		s.logger.Error("Render: repository error for template %q: %v", name, err)
		return "", fmt.Errorf("%w: Render - repository error: %v", ErrInternal, err)
	}

	body, ok := templates[name]
	if !ok {
		s.logger.Warn("Render: template %q not found", name)
		return "", ErrTemplateNotFound
	}

	return RenderTemplate(body, values), nil
}

// RenderTemplate подставляет значения в плейсхолдеры вида {{key}}
func RenderTemplate(body string, values map[string]string) string {
	for key, value := range values {
		body = strings.ReplaceAll(body, "{{"+key+"}}", value)
	}
	return body
}
