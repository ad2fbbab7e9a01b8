package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// ErrInternal ошибка внутреннего сбоя сервиса журнала
var ErrInternal = errors.New("audit service: internal error")

// AuditRepository интерфейс хранилища журнала административных действий
type AuditRepository interface {
	List(ctx context.Context) ([]*domain.AuditEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Service сервис чтения журнала административных действий
type Service struct {
	auditRepo AuditRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(auditRepo AuditRepository, logger Logger) *Service {
	return &Service{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// List возвращает журнал, самые свежие записи первыми
func (s *Service) List(ctx context.Context) ([]*domain.AuditEntry, error) {
	entries, err := s.auditRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}
