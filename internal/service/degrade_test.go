// ABOUTME: Tests for service behaviour when storage is unavailable.
// ABOUTME: Read paths return empty results instead of failing.
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/session"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/stretchr/testify/require"
)

// brokenRepo fails every read and records writes.
type brokenRepo struct {
	nameTaken bool
	saves     int
}

var errBroken = &storage.PersistenceError{Op: "query", Kind: "workout", Err: errors.New("connection refused")}

func (r *brokenRepo) Save(ctx context.Context, e models.Entity) error {
	r.saves++
	return nil
}
func (r *brokenRepo) SaveAll(ctx context.Context, es ...models.Entity) error {
	r.saves += len(es)
	return nil
}
func (r *brokenRepo) Update(ctx context.Context, e models.Entity) error { return errBroken }
func (r *brokenRepo) Delete(ctx context.Context, e models.Entity) error { return errBroken }
func (r *brokenRepo) Authenticate(ctx context.Context, u, p string) (*models.User, error) {
	return nil, errBroken
}
func (r *brokenRepo) NameExists(ctx context.Context, name string) bool { return r.nameTaken }
func (r *brokenRepo) FindUser(ctx context.Context, id int64) (*models.User, error) {
	return nil, errBroken
}
func (r *brokenRepo) FindWorkout(ctx context.Context, uid, id int64) (*models.Workout, error) {
	return nil, errBroken
}
func (r *brokenRepo) FindMeasurement(ctx context.Context, uid, id int64) (*models.Measurement, error) {
	return nil, errBroken
}
func (r *brokenRepo) ListWorkoutsByUser(ctx context.Context, uid int64) ([]models.Workout, error) {
	return nil, errBroken
}
func (r *brokenRepo) ListMeasurementsByUser(ctx context.Context, uid int64) ([]models.Measurement, error) {
	return nil, errBroken
}
func (r *brokenRepo) Close() error { return nil }

func TestReadPathsDegradeToEmpty(t *testing.T) {
	svc := New(&brokenRepo{}, nil)
	sess := session.New(models.User{ID: 1, Username: "alice"}, nil)
	ctx := context.Background()

	workouts := svc.ListWorkouts(ctx, sess)
	require.NotNil(t, workouts)
	require.Empty(t, workouts)
	require.Empty(t, svc.ListMeasurements(ctx, sess))

	d := svc.BuildDashboardSummary(ctx, sess)
	require.Zero(t, d.TotalWorkouts)
	require.Equal(t, "N/A", d.LastWeight)
}

func TestWritePathsPropagate(t *testing.T) {
	svc := New(&brokenRepo{}, nil)
	sess := session.New(models.User{ID: 1, Username: "alice"}, nil)

	w := models.NewWorkout(1, fixedNow.AddDate(-1, 0, 0), "Running", 30)
	w.ID = 4
	var pe *storage.PersistenceError
	require.True(t, errors.As(svc.UpdateWorkout(context.Background(), sess, w), &pe))
	require.True(t, errors.As(svc.DeleteWorkout(context.Background(), sess, w), &pe))
}

func TestRegister_NameCheckFailureBlocksSave(t *testing.T) {
	repo := &brokenRepo{nameTaken: true}
	svc := New(repo, nil)

	_, err := svc.Register(context.Background(), Registration{Username: "alice", Password: "pw", Age: 30, Gender: models.GenderOther})
	require.ErrorIs(t, err, ErrDuplicateName)
	require.Zero(t, repo.saves)
}

func TestLogin_StorageFailureIsNotInvalidCredentials(t *testing.T) {
	svc := New(&brokenRepo{}, nil)
	_, err := svc.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	require.NotErrorIs(t, err, session.ErrInvalidCredentials)
}
