// ABOUTME: Repository interfaces for the fitness store.
// ABOUTME: Lets the service layer run against any backend or a test double.
package storage

import (
	"context"

	"github.com/harperreed/fitness/internal/models"
)

// Gateway persists entities, one unit-of-work per call.
type Gateway interface {
	Save(ctx context.Context, e models.Entity) error
	SaveAll(ctx context.Context, es ...models.Entity) error
	Update(ctx context.Context, e models.Entity) error
	Delete(ctx context.Context, e models.Entity) error
}

// Querier reads accounts and owner-scoped records.
type Querier interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	NameExists(ctx context.Context, username string) bool
	FindUser(ctx context.Context, id int64) (*models.User, error)
	FindWorkout(ctx context.Context, userID, id int64) (*models.Workout, error)
	FindMeasurement(ctx context.Context, userID, id int64) (*models.Measurement, error)
	ListWorkoutsByUser(ctx context.Context, userID int64) ([]models.Workout, error)
	ListMeasurementsByUser(ctx context.Context, userID int64) ([]models.Measurement, error)
}

// Repository is the full store used by the service layer.
type Repository interface {
	Gateway
	Querier
	Close() error
}

var _ Repository = (*DB)(nil)
