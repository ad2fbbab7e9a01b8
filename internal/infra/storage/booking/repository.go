package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/eksamtint/Eksamtint/internal/domain"
	"github.com/eksamtint/Eksamtint/pkg/psqlbuilder"
)

// maxIDRetries ограничивает подбор идентификатора при коллизии в одну миллисекунду
const maxIDRetries = 64

var bookingColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"slot_id",
	"service_id",
	"service_name",
	"service_price",
	"date",
	"slot_key",
	"status",
	"phone_verified",
	"notes",
	"source",
	"priority",
	"rejection_reason",
	"cancellation_reason",
	"history",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. Идентификатор выводится из времени
// создания (unix-миллисекунды); при коллизии в пределах одной миллисекунды
// идентификатор увеличивается на единицу до первого свободного.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	historyJSON, err := json.Marshal(b.History)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal history: %v", ErrEncodeHistory, err)
	}

	id := b.CreatedAt.UnixMilli()
	for attempt := 0; attempt < maxIDRetries; attempt++ {
		query, args, err := psqlbuilder.Insert("bookings").
			Columns(bookingColumns...).
			Values(
				id,
				b.Name,
				b.Email,
				b.Phone,
				b.SlotID,
				b.ServiceID,
				b.ServiceName,
				b.ServicePrice,
				b.Date,
				b.SlotKey,
				b.Status,
				b.PhoneVerified,
				b.Notes,
				b.Source,
				b.Priority,
				b.RejectionReason,
				b.CancellationReason,
				historyJSON,
				b.CreatedAt,
				b.UpdatedAt,
			).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
		}

		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			b.ID = id
			return b, nil
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

// GetByID возвращает бронирование по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List возвращает все бронирования в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at ASC, id ASC")

	return r.queryBookings(ctx, builder, "List")
}

// ListByStatus возвращает бронирования с заданным статусом в порядке создания
func (r *Repository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC, id ASC")

	return r.queryBookings(ctx, builder, "ListByStatus")
}

// ListBySlotKey возвращает бронирования, сгруппированные под ключом (date, slot).
// Используется трекером вместимости; результат никогда не кэшируется.
func (r *Repository) ListBySlotKey(ctx context.Context, slotKey string) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"slot_key": slotKey}).
		OrderBy("created_at ASC, id ASC")

	return r.queryBookings(ctx, builder, "ListBySlotKey")
}

// HasActiveBooking проверяет наличие активного бронирования (pending/confirmed)
// для той же тройки (email, date, slot)
func (r *Repository) HasActiveBooking(ctx context.Context, email, date string, slotID int64) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"email":   email,
			"date":    date,
			"slot_id": slotID,
			"status":  domain.CountedStatuses,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveBooking - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasActiveBooking - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// Update перезаписывает изменяемые поля бронирования: статус, причины и
// историю переходов. Используется переходами жизненного цикла.
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	historyJSON, err := json.Marshal(b.History)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal history: %v", ErrEncodeHistory, err)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", b.Status).
		Set("rejection_reason", b.RejectionReason).
		Set("cancellation_reason", b.CancellationReason).
		Set("history", historyJSON).
		Set("updated_at", b.UpdatedAt).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatus возвращает количество бронирований по каждому статусу
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var status domain.BookingStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - iterate rows: %v", ErrScanRow, err)
	}

	return counts, nil
}

func (r *Repository) queryBookings(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.Booking, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var historyJSON []byte

	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.SlotID,
		&b.ServiceID,
		&b.ServiceName,
		&b.ServicePrice,
		&b.Date,
		&b.SlotKey,
		&b.Status,
		&b.PhoneVerified,
		&b.Notes,
		&b.Source,
		&b.Priority,
		&b.RejectionReason,
		&b.CancellationReason,
		&historyJSON,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &b.History); err != nil {
			return nil, fmt.Errorf("unmarshal history: %v", err)
		}
	}

	return &b, nil
}
