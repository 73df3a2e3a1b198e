package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type sliceRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *sliceRows) Close() {}

func (r *sliceRows) Err() error { return r.err }

func (r *sliceRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (r *sliceRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *sliceRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *sliceRows) Scan(dest ...any) error {
	return assign(r.rows[r.idx-1], dest)
}

func (r *sliceRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (r *sliceRows) RawValues() [][]byte { return nil }

func (r *sliceRows) Conn() *pgx.Conn { return nil }

// assign copies src values into pointer destinations. A nil source value
// leaves pointer-to-pointer destinations nil.
func assign(src []any, dest []any) error {
	if len(src) != len(dest) {
		return fmt.Errorf("scan: got %d destinations for %d values", len(dest), len(src))
	}
	for i, d := range dest {
		v := src[i]
		switch p := d.(type) {
		case *string:
			*p = v.(string)
		case **string:
			if v != nil {
				s := v.(string)
				*p = &s
			}
		case *float64:
			*p = v.(float64)
		case *int64:
			*p = v.(int64)
		default:
			if err := assignTime(d, v); err != nil {
				return err
			}
		}
	}
	return nil
}

type fakeExec struct {
	execFn     func(query string, args ...any) (pgconn.CommandTag, error)
	queryRowFn func(query string, args ...any) pgx.Row
	queryFn    func(query string, args ...any) (pgx.Rows, error)
	queries    []string
}

func (f *fakeExec) record(query string) {
	marker, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	f.queries = append(f.queries, marker)
}

func (f *fakeExec) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.record(query)
	if f.execFn == nil {
		return pgconn.CommandTag{}, nil
	}
	return f.execFn(query, args...)
}

func (f *fakeExec) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.record(query)
	if f.queryRowFn == nil {
		return simpleRow{}
	}
	return f.queryRowFn(query, args...)
}

func (f *fakeExec) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.record(query)
	if f.queryFn == nil {
		return &sliceRows{}, nil
	}
	return f.queryFn(query, args...)
}

func assignTime(d any, v any) error {
	switch p := d.(type) {
	case *time.Time:
		*p = v.(time.Time)
	case **time.Time:
		if v != nil {
			t := v.(time.Time)
			*p = &t
		}
	default:
		return fmt.Errorf("scan: unsupported destination %T", d)
	}
	return nil
}
