// ABOUTME: Gateway and query tests against go-sqlmock.
// ABOUTME: Exercises dialect placeholders, rollbacks and driver failures.
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/harperreed/fitness/internal/models"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return NewWithDB(raw, dialect), mock
}

func TestNameExists_QueryFailureReportsTaken(t *testing.T) {
	db, mock := newMock(t, SQLite)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE username = \?`).
		WithArgs("alice").
		WillReturnError(errors.New("connection reset"))

	require.True(t, db.NameExists(context.Background(), "alice"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_RollsBackOnInsertFailure(t *testing.T) {
	db, mock := newMock(t, SQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO workouts .* RETURNING id`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	w := models.NewWorkout(1, day("2024-01-01"), "Running", 30)
	err := db.Save(context.Background(), w)

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "save", pe.Op)
	require.Equal(t, "workout", pe.Kind)
	require.Contains(t, err.Error(), "disk full")
	require.Zero(t, w.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAll_RollsBackWhenLaterInsertFails(t *testing.T) {
	db, mock := newMock(t, SQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO workouts .* RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO measurements .* RETURNING id`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	w := models.NewWorkout(1, day("2024-01-01"), "Running", 30)
	m := models.NewMeasurement(1, day("2024-01-01"), 70)
	err := db.SaveAll(context.Background(), w, m)

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "save_all", pe.Op)
	require.Contains(t, err.Error(), "record 2 (measurement)")
	require.Zero(t, w.ID, "ids are assigned only after commit")
	require.Zero(t, m.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_CommitFailureIsReported(t *testing.T) {
	db, mock := newMock(t, SQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO measurements`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit().WillReturnError(errors.New("commit lost"))

	m := models.NewMeasurement(1, day("2024-01-01"), 70)
	err := db.Save(context.Background(), m)
	require.Error(t, err)
	require.Zero(t, m.ID, "id is assigned only after commit")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_PostgresPlaceholders(t *testing.T) {
	db, mock := newMock(t, Postgres)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO workouts \(.*\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\) RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	w := models.NewWorkout(1, day("2024-01-01"), "Running", 30)
	require.NoError(t, db.Save(context.Background(), w))
	require.Equal(t, int64(42), w.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_MySQLUsesLastInsertID(t *testing.T) {
	db, mock := newMock(t, MySQL)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users \(.*\) VALUES \(\?, \?, \?, \?, \?\)$`).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	u := models.NewUser("alice", 30, models.GenderFemale)
	u.PasswordHash = "hash"
	require.NoError(t, db.Save(context.Background(), u))
	require.Equal(t, int64(7), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NoRowsRollsBack(t *testing.T) {
	db, mock := newMock(t, SQLite)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE workouts SET .* WHERE id = \? AND user_id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	w := models.NewWorkout(1, day("2024-01-01"), "Running", 30)
	w.ID = 9
	err := db.Update(context.Background(), w)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_MissingRowSkipsDelete(t *testing.T) {
	db, mock := newMock(t, SQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM measurements WHERE id = \? AND user_id = \?`).
		WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	m := models.NewMeasurement(1, day("2024-01-01"), 70)
	m.ID = 3
	require.NoError(t, db.Delete(context.Background(), m))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListWorkouts_QueryFailureIsPersistenceError(t *testing.T) {
	db, mock := newMock(t, SQLite)

	mock.ExpectQuery(`SELECT .* FROM workouts WHERE user_id = \?`).
		WillReturnError(errors.New("table locked"))

	_, err := db.ListWorkoutsByUser(context.Background(), 1)
	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "query", pe.Op)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRebind(t *testing.T) {
	require.Equal(t, "a = $1 AND b = $2", Postgres.rebind("a = ? AND b = ?"))
	require.Equal(t, "a = ? AND b = ?", SQLite.rebind("a = ? AND b = ?"))
	require.Equal(t, "a = ? AND b = ?", MySQL.rebind("a = ? AND b = ?"))
}

func TestParseDialect(t *testing.T) {
	tests := map[string]Dialect{
		"":           SQLite,
		"sqlite":     SQLite,
		"SQLite3":    SQLite,
		"postgres":   Postgres,
		"postgresql": Postgres,
		"mysql":      MySQL,
		"mariadb":    MySQL,
	}
	for in, want := range tests {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseDialect("oracle")
	require.Error(t, err)
}

func TestConnString_MySQLFoundRows(t *testing.T) {
	s, err := connString(MySQL, "user:pw@tcp(localhost:3306)/fitness")
	require.NoError(t, err)
	require.Contains(t, s, "clientFoundRows=true")

	_, err = connString(Postgres, "")
	require.Error(t, err)
}
