// ABOUTME: Data migration between fitness storage backends.
// ABOUTME: Copies users, workouts, and measurements from source to destination.
package storage

import (
	"context"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// Source is a store whose full contents can be enumerated.
type Source interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	Querier
}

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Users        int
	Workouts     int
	Measurements int
}

// MigrateData copies all data from src to dst. Users keep their password
// hashes; workouts and measurements are re-keyed to the new user ids.
// The destination should be empty before calling this function.
func MigrateData(ctx context.Context, src Source, dst Gateway) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	users, err := src.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list source users: %w", err)
	}

	for _, u := range users {
		oldID := u.ID
		u.ID = 0
		if err := dst.Save(ctx, &u); err != nil {
			return nil, fmt.Errorf("create user %q: %w", u.Username, err)
		}
		summary.Users++

		workouts, err := src.ListWorkoutsByUser(ctx, oldID)
		if err != nil {
			return nil, fmt.Errorf("list workouts for %q: %w", u.Username, err)
		}
		for _, w := range workouts {
			w.ID = 0
			w.UserID = u.ID
			if err := dst.Save(ctx, &w); err != nil {
				return nil, fmt.Errorf("create workout: %w", err)
			}
			summary.Workouts++
		}

		measurements, err := src.ListMeasurementsByUser(ctx, oldID)
		if err != nil {
			return nil, fmt.Errorf("list measurements for %q: %w", u.Username, err)
		}
		for _, m := range measurements {
			m.ID = 0
			m.UserID = u.ID
			if err := dst.Save(ctx, &m); err != nil {
				return nil, fmt.Errorf("create measurement: %w", err)
			}
			summary.Measurements++
		}
	}

	return summary, nil
}
