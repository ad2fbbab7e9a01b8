package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/pkg/psqlbuilder"
)

// settingsRowID настройки хранятся единственной строкой
const settingsRowID = 1

// Repository репозиторий настроек и шаблонов сообщений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings возвращает документ настроек
func (r *Repository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT business_name, currency, slot_interval, admin_password FROM settings WHERE id = $1`

	var s domain.Settings
	err := r.db.QueryRowContext(ctx, query, settingsRowID).Scan(
		&s.BusinessName,
		&s.Currency,
		&s.SlotInterval,
		&s.AdminPassword,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// SaveSettings перезаписывает документ настроек целиком
func (r *Repository) SaveSettings(ctx context.Context, s *domain.Settings) error {
	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "business_name", "currency", "slot_interval", "admin_password").
		Values(settingsRowID, s.BusinessName, s.Currency, s.SlotInterval, s.AdminPassword).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			currency = EXCLUDED.currency,
			slot_interval = EXCLUDED.slot_interval,
			admin_password = EXCLUDED.admin_password`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveSettings - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveSettings - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetTemplates возвращает все шаблоны сообщений
func (r *Repository) GetTemplates(ctx context.Context) (map[string]string, error) {
	query, args, err := psqlbuilder.Select("name", "body").
		From("message_templates").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make(map[string]string)
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("%w: GetTemplates - scan template: %v", ErrScanRow, err)
		}
		templates[name] = body
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - iterate rows: %v", ErrScanRow, err)
	}

	return templates, nil
}

// SaveTemplate сохраняет текст шаблона по имени
func (r *Repository) SaveTemplate(ctx context.Context, name, body string) error {
	query, args, err := psqlbuilder.Insert("message_templates").
		Columns("name", "body").
		Values(name, body).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveTemplate - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveTemplate - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
