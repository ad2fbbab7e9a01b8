package waitlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/pkg/psqlbuilder"
)

const maxIDRetries = 64

var entryColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"slot_id",
	"service_id",
	"date",
	"phone_verified",
	"notes",
	"source",
	"priority",
	"added_at",
}

// Repository репозиторий листа ожидания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория листа ожидания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в лист ожидания. Идентификатор выводится из
// времени добавления так же, как у бронирований.
func (r *Repository) Create(ctx context.Context, e *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	id := e.AddedAt.UnixMilli()
	for attempt := 0; attempt < maxIDRetries; attempt++ {
		query, args, err := psqlbuilder.Insert("waitlist").
			Columns(entryColumns...).
			Values(
				id,
				e.Name,
				e.Email,
				e.Phone,
				e.SlotID,
				e.ServiceID,
				e.Date,
				e.PhoneVerified,
				e.Notes,
				e.Source,
				e.Priority,
				e.AddedAt,
			).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
		}

		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			e.ID = id
			return e, nil
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			id++
			continue
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil, fmt.Errorf("%w: Create - exhausted id retries", ErrExecQuery)
}

// GetByID возвращает запись листа ожидания по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WaitlistEntry, error) {
	query, args, err := psqlbuilder.Select(entryColumns...).
		From("waitlist").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	return e, nil
}

// List возвращает весь лист ожидания в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	return r.query(ctx, psqlbuilder.Select(entryColumns...).
		From("waitlist").
		OrderBy("added_at ASC, id ASC"), "List")
}

// ListBySlotDate возвращает кандидатов на продвижение для пары (слот, дата)
// в порядке добавления (FIFO)
func (r *Repository) ListBySlotDate(ctx context.Context, slotID int64, date string) ([]*domain.WaitlistEntry, error) {
	return r.query(ctx, psqlbuilder.Select(entryColumns...).
		From("waitlist").
		Where(squirrel.Eq{"slot_id": slotID, "date": date}).
		OrderBy("added_at ASC, id ASC"), "ListBySlotDate")
}

// Delete удаляет запись листа ожидания (после продвижения)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("waitlist").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.WaitlistEntry, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var entries []*domain.WaitlistEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan entry: %v", ErrScanRow, op, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.WaitlistEntry, error) {
	var e domain.WaitlistEntry
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Phone,
		&e.SlotID,
		&e.ServiceID,
		&e.Date,
		&e.PhoneVerified,
		&e.Notes,
		&e.Source,
		&e.Priority,
		&e.AddedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
