// ABOUTME: SQL for workouts.
// ABOUTME: Every statement is scoped to the owning user.
package storage

import (
	"context"
	"database/sql"

	"github.com/harperreed/fitness/internal/models"
)

const workoutColumns = `id, user_id, workout_date, workout_type, duration_minutes, calories_burned, created_at`

func (d *DB) insertWorkout(ctx context.Context, tx DBTX, w *models.Workout) (int64, error) {
	return d.insert(ctx, tx,
		`INSERT INTO workouts (user_id, workout_date, workout_type, duration_minutes, calories_burned, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		w.UserID, formatDate(w.Date), w.Type, w.DurationMinutes, nullInt(w.CaloriesBurned), formatTimestamp(w.CreatedAt))
}

func (d *DB) updateWorkout(ctx context.Context, tx DBTX, w *models.Workout) error {
	return d.execOne(ctx, tx,
		`UPDATE workouts SET workout_date = ?, workout_type = ?, duration_minutes = ?, calories_burned = ? WHERE id = ? AND user_id = ?`,
		formatDate(w.Date), w.Type, w.DurationMinutes, nullInt(w.CaloriesBurned), w.ID, w.UserID)
}

func (d *DB) deleteWorkout(ctx context.Context, tx DBTX, w *models.Workout) error {
	found, err := d.exists(ctx, tx, `SELECT COUNT(*) FROM workouts WHERE id = ? AND user_id = ?`, w.ID, w.UserID)
	if err != nil || !found {
		return err
	}
	_, err = tx.ExecContext(ctx, d.dialect.rebind(`DELETE FROM workouts WHERE id = ? AND user_id = ?`), w.ID, w.UserID)
	return err
}

// FindWorkout retrieves one workout owned by userID.
func (d *DB) FindWorkout(ctx context.Context, userID, id int64) (*models.Workout, error) {
	row := d.db.QueryRowContext(ctx,
		d.dialect.rebind(`SELECT `+workoutColumns+` FROM workouts WHERE id = ? AND user_id = ?`), id, userID)
	w, err := scanWorkout(row)
	if err != nil {
		return nil, queryErr("workout", err)
	}
	return w, nil
}

// ListWorkoutsByUser returns the user's workouts, oldest first.
func (d *DB) ListWorkoutsByUser(ctx context.Context, userID int64) ([]models.Workout, error) {
	rows, err := d.db.QueryContext(ctx,
		d.dialect.rebind(`SELECT `+workoutColumns+` FROM workouts WHERE user_id = ? ORDER BY workout_date ASC, id ASC`), userID)
	if err != nil {
		return nil, queryErr("workout", err)
	}
	defer func() { _ = rows.Close() }()

	workouts := []models.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, queryErr("workout", err)
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr("workout", err)
	}
	return workouts, nil
}

func scanWorkout(s scanner) (*models.Workout, error) {
	var (
		w         models.Workout
		date      string
		calories  sql.NullInt64
		createdAt string
	)
	if err := s.Scan(&w.ID, &w.UserID, &date, &w.Type, &w.DurationMinutes, &calories, &createdAt); err != nil {
		return nil, err
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	w.Date = d
	w.CaloriesBurned = intPtr(calories)
	w.CreatedAt = parseTimestamp(createdAt)
	return &w, nil
}
