package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
)

// fakeRowScanner implements RowScanner for tests. Row values must have the
// exact type of the scan destination.
type fakeRowScanner struct {
	rows   []fakeRow
	i      int
	err    error
	closed bool
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return fmt.Errorf("dest length mismatch: %d != %d", len(dest), len(row.values))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i]).Elem()
		sv := reflect.ValueOf(row.values[i])
		if !sv.Type().AssignableTo(dv.Type()) {
			return fmt.Errorf("column %d: cannot assign %s to %s", i, sv.Type(), dv.Type())
		}
		dv.Set(sv)
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	f.closed = true
	return nil
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn func(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecFn  func(ctx context.Context, query string, args ...any) (sql.Result, error)

	lastQuery string
	lastArgs  []any
	calls     int
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.calls++
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.calls++
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return fakeResult{rows: 1}, nil
}

func rowsOf(values ...[]any) *fakeRowScanner {
	rs := &fakeRowScanner{}
	for _, v := range values {
		rs.rows = append(rs.rows, fakeRow{values: v})
	}
	return rs
}
