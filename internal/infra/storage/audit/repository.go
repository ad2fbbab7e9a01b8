package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/pkg/psqlbuilder"
)

const maxIDRetries = 64

// Repository репозиторий журнала административных действий.
// Журнал ограничен domain.MaxAuditLogEntries последними записями.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись и усечет журнал до последних N записей
func (r *Repository) Append(ctx context.Context, action, details string) error {
	now := time.Now().UTC()

	id := now.UnixMilli()
	for attempt := 0; attempt < maxIDRetries; attempt++ {
		query, args, err := psqlbuilder.Insert("audit_logs").
			Columns("id", "action", "details", "timestamp").
			Values(id, action, details, now).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
		}

		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return r.trim(ctx)
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			id++
			continue
		}
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return fmt.Errorf("%w: Append - exhausted id retries", ErrExecQuery)
}

// List возвращает журнал, самые свежие записи первыми
func (r *Repository) List(ctx context.Context) ([]*domain.AuditEntry, error) {
	query, args, err := psqlbuilder.Select("id", "action", "details", "timestamp").
		From("audit_logs").
		OrderBy("timestamp DESC, id DESC").
		Limit(uint64(domain.MaxAuditLogEntries)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.Details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: List - scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}

// trim удаляет записи за пределами окна последних N
func (r *Repository) trim(ctx context.Context) error {
	keep := psqlbuilder.Select("id").
		From("audit_logs").
		OrderBy("timestamp DESC, id DESC").
		Limit(uint64(domain.MaxAuditLogEntries))

	keepSQL, keepArgs, err := keep.ToSql()
	if err != nil {
		return fmt.Errorf("%w: trim - build keep query: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Delete("audit_logs").
		Where(squirrel.Expr(fmt.Sprintf("id NOT IN (%s)", keepSQL), keepArgs...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: trim - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: trim - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
