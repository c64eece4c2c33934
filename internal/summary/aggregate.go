// ABOUTME: Aggregations over a user's workouts and measurements.
// ABOUTME: Pure functions; unset calories count as zero.
package summary

import (
	"sort"
	"time"

	"github.com/harperreed/fitness/internal/models"
)

// TotalCalories sums calories burned across all workouts.
func TotalCalories(workouts []models.Workout) int {
	total := 0
	for _, w := range workouts {
		total += w.Calories()
	}
	return total
}

// CaloriesOn sums calories burned by workouts on the calendar day of date.
func CaloriesOn(workouts []models.Workout, date time.Time) int {
	want := models.DateOf(date)
	total := 0
	for _, w := range workouts {
		if models.DateOf(w.Date).Equal(want) {
			total += w.Calories()
		}
	}
	return total
}

// LatestMeasurement returns the measurement with the latest record date.
// Among measurements on the same date, the one with the higher id wins.
func LatestMeasurement(measurements []models.Measurement) (models.Measurement, bool) {
	if len(measurements) == 0 {
		return models.Measurement{}, false
	}
	latest := measurements[0]
	for _, m := range measurements[1:] {
		if m.RecordDate.After(latest.RecordDate) ||
			(m.RecordDate.Equal(latest.RecordDate) && m.ID > latest.ID) {
			latest = m
		}
	}
	return latest, true
}

// TypeCalories is the calorie total for one workout type.
type TypeCalories struct {
	Type     string `json:"type"`
	Calories int    `json:"calories"`
}

// CaloriesByType groups calories by workout type, largest total first.
// Equal totals are ordered by type name.
func CaloriesByType(workouts []models.Workout) []TypeCalories {
	totals := make(map[string]int)
	for _, w := range workouts {
		totals[w.Type] += w.Calories()
	}

	out := make([]TypeCalories, 0, len(totals))
	for t, c := range totals {
		out = append(out, TypeCalories{Type: t, Calories: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Calories != out[j].Calories {
			return out[i].Calories > out[j].Calories
		}
		return out[i].Type < out[j].Type
	})
	return out
}
