// ABOUTME: Column encoding helpers and dialect-aware insert.
// ABOUTME: Dates are stored as YYYY-MM-DD text on every backend.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/fitness/internal/models"
)

func formatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// insert runs an INSERT and returns the generated id.
func (d *DB) insert(ctx context.Context, tx DBTX, query string, args ...any) (int64, error) {
	if d.dialect == MySQL {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	var id int64
	if err := tx.QueryRowContext(ctx, d.dialect.rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// execOne runs a statement that must touch exactly one row.
func (d *DB) execOne(ctx context.Context, tx DBTX, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, d.dialect.rebind(query), args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// exists reports whether query returns at least one row.
func (d *DB) exists(ctx context.Context, tx DBTX, query string, args ...any) (bool, error) {
	var n int
	if err := tx.QueryRowContext(ctx, d.dialect.rebind(query), args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
