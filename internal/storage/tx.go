// ABOUTME: Scoped unit-of-work helper shared by every gateway operation.
// ABOUTME: Commits on success, rolls back on error or panic.
package storage

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the gateway.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with the transactional handle, then
// commits on success or rolls back on error or panic. Panics are rethrown.
//
//	err := storage.WithTx(ctx, db, nil, func(ctx context.Context, tx storage.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
