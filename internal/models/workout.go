// ABOUTME: Workout model for logged exercise sessions.
// ABOUTME: Each workout belongs to exactly one user for its whole lifetime.
package models

import (
	"strings"
	"time"
)

// WorkoutTypes are the labels offered by the shells. Other text is accepted.
var WorkoutTypes = []string{
	"Running", "Cycling", "Swimming", "Walking",
	"Weightlifting", "Yoga", "HIIT", "Other",
}

const (
	MaxWorkoutTypeLen  = 20
	MaxDurationMinutes = 600
	MaxCaloriesBurned  = 5000
)

// Workout represents an exercise session.
type Workout struct {
	ID              int64     `json:"id" yaml:"id"`
	UserID          int64     `json:"user_id" yaml:"user_id"`
	Date            time.Time `json:"date" yaml:"date"`
	Type            string    `json:"type" yaml:"type"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
	CaloriesBurned  *int      `json:"calories_burned,omitempty" yaml:"calories_burned,omitempty"` // nil when not recorded
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// NewWorkout creates an unsaved Workout for the given owner.
func NewWorkout(userID int64, date time.Time, workoutType string, minutes int) *Workout {
	return &Workout{
		UserID:          userID,
		Date:            DateOf(date),
		Type:            strings.TrimSpace(workoutType),
		DurationMinutes: minutes,
		CreatedAt:       time.Now().UTC(),
	}
}

// WithCalories sets the calories burned.
func (w *Workout) WithCalories(kcal int) *Workout {
	w.CaloriesBurned = &kcal
	return w
}

// Calories returns the calories burned, counting unset as zero.
func (w Workout) Calories() int {
	if w.CaloriesBurned == nil {
		return 0
	}
	return *w.CaloriesBurned
}

func (w *Workout) Key() int64   { return w.ID }
func (w *Workout) Kind() string { return "workout" }

// Validate checks field bounds. now is used to reject future dates.
func (w *Workout) Validate(now time.Time) error {
	if w.Date.IsZero() {
		return invalid("date", "please select a date")
	}
	if afterDay(w.Date, now) {
		return invalid("date", "workout date cannot be in the future")
	}
	if w.Type == "" {
		return invalid("type", "workout type is required")
	}
	if len(w.Type) > MaxWorkoutTypeLen {
		return invalid("type", "workout type must be at most %d characters", MaxWorkoutTypeLen)
	}
	if w.DurationMinutes <= 0 {
		return invalid("duration", "duration must be greater than 0 minutes")
	}
	if w.DurationMinutes > MaxDurationMinutes {
		return invalid("duration", "duration cannot exceed %d minutes (10 hours)", MaxDurationMinutes)
	}
	if w.CaloriesBurned != nil {
		if *w.CaloriesBurned < 0 {
			return invalid("calories", "calories cannot be negative")
		}
		if *w.CaloriesBurned > MaxCaloriesBurned {
			return invalid("calories", "calories seems unrealistic (over %d)", MaxCaloriesBurned)
		}
	}
	return nil
}
