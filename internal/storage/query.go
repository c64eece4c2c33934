// ABOUTME: Query layer: authentication and username existence checks.
// ABOUTME: Owner-scoped list and find queries live next to their tables.
package storage

import (
	"context"
	"errors"

	"github.com/harperreed/fitness/internal/auth"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/observability"
)

// Authenticate returns the user whose username and password both match.
// An unknown username and a wrong password both yield ErrNotFound.
func (d *DB) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := d.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			d.log.Info(ctx, "authentication failed", "username", username)
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		d.log.Info(ctx, "authentication failed", "username", username)
		return nil, ErrNotFound
	}
	return u, nil
}

// NameExists reports whether username is taken. When the check itself
// fails, the name is reported as taken.
func (d *DB) NameExists(ctx context.Context, username string) bool {
	found, err := d.exists(ctx, d.db, `SELECT COUNT(*) FROM users WHERE username = ?`, username)
	if err != nil {
		observability.RecordNameCheckFailure()
		d.log.Error(ctx, "username check failed, treating as taken", "username", username, "error", err)
		return true
	}
	return found
}
