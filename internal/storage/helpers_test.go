// ABOUTME: Shared fixtures for storage tests.
// ABOUTME: Opens a fresh migrated SQLite database per test.
package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fitness/internal/auth"
	"github.com/harperreed/fitness/internal/models"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens a migrated SQLite database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), SQLite, filepath.Join(t.TempDir(), "fitness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// createUser saves a user with the given name and password.
func createUser(t *testing.T, db *DB, name, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := models.NewUser(name, 30, models.GenderOther)
	u.PasswordHash = hash
	require.NoError(t, db.Save(context.Background(), u))
	return u
}

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
