package jsonstore

import (
	"context"
	"time"

	"github.com/eksamtint/Eksamtint/internal/domain"
)

// AuditRepo представление журнала действий поверх документного хранилища.
// Новые записи встают в начало, журнал усечется до последних N.
type AuditRepo struct {
	s *Store
}

// Append добавляет запись в начало журнала
func (r *AuditRepo) Append(ctx context.Context, action, details string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now().UTC()
	entry := &domain.AuditEntry{
		ID: nextID(now.UnixMilli(), func(id int64) bool {
			for _, e := range r.s.auditLogs {
				if e.ID == id {
					return true
				}
			}
			return false
		}),
		Action:    action,
		Details:   details,
		Timestamp: now,
	}

	prev := r.s.auditLogs
	r.s.auditLogs = append([]*domain.AuditEntry{entry}, r.s.auditLogs...)
	if len(r.s.auditLogs) > domain.MaxAuditLogEntries {
		r.s.auditLogs = r.s.auditLogs[:domain.MaxAuditLogEntries]
	}

	if err := r.s.saveAuditLogs(); err != nil {
		r.s.auditLogs = prev
		return err
	}
	return nil
}

// List возвращает журнал, самые свежие записи первыми
func (r *AuditRepo) List(ctx context.Context) ([]*domain.AuditEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.AuditEntry, 0, len(r.s.auditLogs))
	for _, e := range r.s.auditLogs {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}
