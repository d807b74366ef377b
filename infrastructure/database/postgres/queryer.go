package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *sql.DB e *sql.Tx, permitindo que os repositórios
// rodem tanto direto na conexão quanto dentro de uma transação.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
