package offering

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все услуги в порядке идентификаторов
func (r *Repository) List(ctx context.Context) ([]*domain.Offering, error) {
	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price").
		From("offerings").
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

	var offerings []*domain.Offering
	for rows.Next() {
		var o domain.Offering
		if err := rows.Scan(&o.ID, &o.Name, &o.DurationMinutes, &o.Price); err != nil {
			return nil, fmt.Errorf("%w: List - scan offering: %v", ErrScanRow, err)
		}
		offerings = append(offerings, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return offerings, nil
}

// GetByID возвращает услугу по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Offering, error) {
	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price").
		From("offerings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Offering
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.Name, &o.DurationMinutes, &o.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOfferingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan offering: %v", ErrScanRow, err)
	}

	return &o, nil
}

// Create создает новую услугу с идентификатором max(id)+1
func (r *Repository) Create(ctx context.Context, name string, durationMinutes int, price float64) (*domain.Offering, error) {
	query, args, err := psqlbuilder.Insert("offerings").
		Columns("id", "name", "duration_minutes", "price").
		Values(
			squirrel.Expr("(SELECT COALESCE(MAX(id), 0) + 1 FROM offerings)"),
			name,
			durationMinutes,
			price,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	o := &domain.Offering{Name: name, DurationMinutes: durationMinutes, Price: price}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&o.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return o, nil
}

// Delete удаляет услугу из каталога
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("offerings").
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
		return ErrOfferingNotFound
	}

	return nil
}
