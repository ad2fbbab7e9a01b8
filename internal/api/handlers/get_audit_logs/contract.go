package get_audit_logs

import (
	"context"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

type AuditService interface {
	List(ctx context.Context) ([]*domain.AuditEntry, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
