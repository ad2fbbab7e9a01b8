// Package dbexec определяет минимальный интерфейс исполнителя SQL запросов,
// которому удовлетворяют *sql.DB и *sql.Tx
package dbexec

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
