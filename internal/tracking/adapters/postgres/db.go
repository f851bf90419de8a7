package postgres

import (
	"context"
	"database/sql"
)

// DB is the write side this adapter needs. The analytics SQLDB wrapper
// satisfies it.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
