// ABOUTME: Tests for Save, Update and Delete on a temporary SQLite database.
// ABOUTME: Checks ownership scoping, cascades and constraint failures.
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/harperreed/fitness/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSaveAndListWorkout_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	w := models.NewWorkout(u.ID, day("2024-01-01"), "Running", 30).WithCalories(300)
	require.NoError(t, db.Save(ctx, w))
	require.NotZero(t, w.ID, "save must assign an id")

	got, err := db.ListWorkoutsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.Equal(t, w.ID, got[0].ID)
	require.Equal(t, u.ID, got[0].UserID)
	require.True(t, got[0].Date.Equal(day("2024-01-01")))
	require.Equal(t, "Running", got[0].Type)
	require.Equal(t, 30, got[0].DurationMinutes)
	require.NotNil(t, got[0].CaloriesBurned)
	require.Equal(t, 300, *got[0].CaloriesBurned)
}

func TestSaveWorkout_NilCaloriesStaysNil(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	require.NoError(t, db.Save(ctx, models.NewWorkout(u.ID, day("2024-02-01"), "Yoga", 45)))

	got, err := db.ListWorkoutsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Nil(t, got[0].CaloriesBurned)
	require.Equal(t, 0, got[0].Calories())
}

func TestSaveMeasurement_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	withHeight := models.NewMeasurement(u.ID, day("2024-03-01"), 70.5).WithHeight(175)
	noHeight := models.NewMeasurement(u.ID, day("2024-03-02"), 70.1)
	require.NoError(t, db.Save(ctx, withHeight))
	require.NoError(t, db.Save(ctx, noHeight))

	got, err := db.ListMeasurementsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, withHeight.ID, got[0].ID)
	require.Equal(t, 70.5, got[0].Weight)
	require.NotNil(t, got[0].Height)
	require.Equal(t, 175.0, *got[0].Height)

	require.Equal(t, noHeight.ID, got[1].ID)
	require.Nil(t, got[1].Height)
}

func TestUpdateWorkout(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	w := models.NewWorkout(u.ID, day("2024-01-01"), "Running", 30)
	require.NoError(t, db.Save(ctx, w))

	w.Type = "Cycling"
	w.DurationMinutes = 60
	w.WithCalories(450)
	require.NoError(t, db.Update(ctx, w))

	got, err := db.FindWorkout(ctx, u.ID, w.ID)
	require.NoError(t, err)
	require.Equal(t, "Cycling", got.Type)
	require.Equal(t, 60, got.DurationMinutes)
	require.Equal(t, 450, got.Calories())
}

func TestUpdateMissingRow_NotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	m := models.NewMeasurement(u.ID, day("2024-01-01"), 80)
	require.NoError(t, db.Save(ctx, m))
	require.NoError(t, db.Delete(ctx, m))

	err := db.Update(ctx, m)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "update", pe.Op)
	require.Equal(t, "measurement", pe.Kind)
}

func TestUpdate_OtherOwnerNotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	alice := createUser(t, db, "alice", "pw")
	bob := createUser(t, db, "bob", "pw")

	w := models.NewWorkout(alice.ID, day("2024-01-01"), "Running", 30)
	require.NoError(t, db.Save(ctx, w))

	forged := *w
	forged.UserID = bob.ID
	forged.Type = "Swimming"
	require.True(t, errors.Is(db.Update(ctx, &forged), ErrNotFound))

	got, err := db.FindWorkout(ctx, alice.ID, w.ID)
	require.NoError(t, err)
	require.Equal(t, "Running", got.Type)
}

func TestDeleteStaleReference(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	require.NoError(t, db.Save(ctx, models.NewWorkout(u.ID, day("2024-01-01"), "Running", 30)))

	// Fetched in an earlier unit-of-work.
	list, err := db.ListWorkoutsByUser(ctx, u.ID)
	require.NoError(t, err)
	stale := list[0]

	require.NoError(t, db.Delete(ctx, &stale))
	remaining, err := db.ListWorkoutsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	// Already gone: still not an error.
	require.NoError(t, db.Delete(ctx, &stale))
}

func TestDelete_OtherOwnerIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	alice := createUser(t, db, "alice", "pw")
	bob := createUser(t, db, "bob", "pw")

	m := models.NewMeasurement(alice.ID, day("2024-01-01"), 60)
	require.NoError(t, db.Save(ctx, m))

	forged := *m
	forged.UserID = bob.ID
	require.NoError(t, db.Delete(ctx, &forged))

	got, err := db.ListMeasurementsByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestDeleteUser_Cascades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	require.NoError(t, db.Save(ctx, models.NewWorkout(u.ID, day("2024-01-01"), "Running", 30)))
	require.NoError(t, db.Save(ctx, models.NewMeasurement(u.ID, day("2024-01-01"), 70)))

	require.NoError(t, db.Delete(ctx, u))

	_, err := db.FindUser(ctx, u.ID)
	require.ErrorIs(t, err, ErrNotFound)

	workouts, err := db.ListWorkoutsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, workouts)
	measurements, err := db.ListMeasurementsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, measurements)
}

func TestSave_DuplicateUsernameFails(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "alice", "pw")

	dup := models.NewUser("alice", 40, models.GenderFemale)
	dup.PasswordHash = "x"
	err := db.Save(context.Background(), dup)

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "save", pe.Op)
	require.Equal(t, "user", pe.Kind)
	require.Zero(t, dup.ID, "failed save must not assign an id")
}

func TestSave_WorkoutForUnknownUserFails(t *testing.T) {
	db := setupTestDB(t)
	err := db.Save(context.Background(), models.NewWorkout(999, day("2024-01-01"), "Running", 30))
	var pe *PersistenceError
	require.True(t, errors.As(err, &pe), "foreign key must be enforced, got %v", err)
}

func TestSaveAll_AssignsIDsInOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	w := models.NewWorkout(u.ID, day("2024-01-01"), "Running", 30)
	m := models.NewMeasurement(u.ID, day("2024-01-01"), 70)
	require.NoError(t, db.SaveAll(ctx, w, m))
	require.NotZero(t, w.ID)
	require.NotZero(t, m.ID)

	got, err := db.FindMeasurement(ctx, u.ID, m.ID)
	require.NoError(t, err)
	require.Equal(t, 70.0, got.Weight)
}

func TestSaveAll_FailureStoresNothing(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createUser(t, db, "alice", "pw")

	good := models.NewWorkout(u.ID, day("2024-01-01"), "Running", 30)
	orphan := models.NewWorkout(999, day("2024-01-02"), "Yoga", 45)
	err := db.SaveAll(ctx, good, orphan)

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe), "foreign key must be enforced, got %v", err)
	require.Zero(t, good.ID)

	stored, err := db.ListWorkoutsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestSaveAll_Empty(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SaveAll(context.Background()))
}

type unknownEntity struct{}

func (unknownEntity) Key() int64   { return 0 }
func (unknownEntity) Kind() string { return "mystery" }

func TestSave_UnsupportedEntity(t *testing.T) {
	db := setupTestDB(t)
	err := db.Save(context.Background(), unknownEntity{})
	require.ErrorIs(t, err, ErrUnsupportedEntity)

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "mystery", pe.Kind)
}
