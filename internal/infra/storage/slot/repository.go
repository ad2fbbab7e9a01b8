package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/pkg/psqlbuilder"
)

// Repository репозиторий каталога слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все слоты в порядке их идентификаторов
func (r *Repository) List(ctx context.Context) ([]*domain.Slot, error) {
	query, args, err := psqlbuilder.Select("id", "label", "capacity", "enabled").
		From("slots").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var slots []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.Label, &s.Capacity, &s.Enabled); err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID возвращает слот по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	query, args, err := psqlbuilder.Select("id", "label", "capacity", "enabled").
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Label, &s.Capacity, &s.Enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Create создает новый слот. Идентификатор назначается как max(id)+1,
// либо 1 для пустого каталога.
func (r *Repository) Create(ctx context.Context, label string, capacity int) (*domain.Slot, error) {
	query, args, err := psqlbuilder.Insert("slots").
		Columns("id", "label", "capacity", "enabled").
		Values(
			squirrel.Expr("(SELECT COALESCE(MAX(id), 0) + 1 FROM slots)"),
			label,
			capacity,
			true,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	s := &domain.Slot{Label: label, Capacity: capacity, Enabled: true}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Update обновляет изменяемые поля слота (capacity, enabled)
func (r *Repository) Update(ctx context.Context, id int64, update domain.SlotUpdate) (*domain.Slot, error) {
	builder := psqlbuilder.Update("slots").Where(squirrel.Eq{"id": id})

	changed := false
	if update.Capacity != nil {
		builder = builder.Set("capacity", *update.Capacity)
		changed = true
	}
	if update.Enabled != nil {
		builder = builder.Set("enabled", *update.Enabled)
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := builder.
		Suffix("RETURNING id, label, capacity, enabled").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Label, &s.Capacity, &s.Enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return &s, nil
}
