package postgres

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	// registers the postgres dialect ($n placeholders)
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var dialect = goqu.Dialect("postgres")

const (
	usersTable        = "users"
	sessionsTable     = "sessions"
	interactionsTable = "interactions"
	sentimentTable    = "sentiment_analysis"
)
