// ABOUTME: SQL for user accounts.
// ABOUTME: Deleting a user removes its workouts and measurements by cascade.
package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/harperreed/fitness/internal/models"
)

const userColumns = `id, username, password_hash, age, gender, created_at`

func (d *DB) insertUser(ctx context.Context, tx DBTX, u *models.User) (int64, error) {
	return d.insert(ctx, tx,
		`INSERT INTO users (username, password_hash, age, gender, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.Age, string(u.Gender), formatTimestamp(u.CreatedAt))
}

func (d *DB) updateUser(ctx context.Context, tx DBTX, u *models.User) error {
	return d.execOne(ctx, tx,
		`UPDATE users SET username = ?, password_hash = ?, age = ?, gender = ? WHERE id = ?`,
		u.Username, u.PasswordHash, u.Age, string(u.Gender), u.ID)
}

func (d *DB) deleteUser(ctx context.Context, tx DBTX, u *models.User) error {
	found, err := d.exists(ctx, tx, `SELECT COUNT(*) FROM users WHERE id = ?`, u.ID)
	if err != nil || !found {
		return err
	}
	_, err = tx.ExecContext(ctx, d.dialect.rebind(`DELETE FROM users WHERE id = ?`), u.ID)
	return err
}

// FindUser retrieves a user by id.
func (d *DB) FindUser(ctx context.Context, id int64) (*models.User, error) {
	row := d.db.QueryRowContext(ctx, d.dialect.rebind(`SELECT `+userColumns+` FROM users WHERE id = ?`), id)
	u, err := scanUser(row)
	if err != nil {
		return nil, queryErr("user", err)
	}
	return u, nil
}

// FindUserByUsername retrieves a user by exact login name.
func (d *DB) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := d.db.QueryRowContext(ctx, d.dialect.rebind(`SELECT `+userColumns+` FROM users WHERE username = ?`), username)
	u, err := scanUser(row)
	if err != nil {
		return nil, queryErr("user", err)
	}
	return u, nil
}

// ListUsers returns every account ordered by id.
func (d *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, queryErr("user", err)
	}
	defer func() { _ = rows.Close() }()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, queryErr("user", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr("user", err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u         models.User
		gender    string
		createdAt string
	)
	if err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Age, &gender, &createdAt); err != nil {
		return nil, err
	}
	u.Gender = models.Gender(gender)
	u.CreatedAt = parseTimestamp(createdAt)
	return &u, nil
}

// queryErr maps sql.ErrNoRows to ErrNotFound and wraps everything else.
func queryErr(kind string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return persistErr("query", kind, err)
}
