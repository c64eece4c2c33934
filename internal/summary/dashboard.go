// ABOUTME: Dashboard summary shown after login.
// ABOUTME: Counts, calorie totals, latest weight and BMI status, chart series and table rows.
package summary

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/fitness/internal/models"
)

const (
	seriesDateLayout = "Jan 02"
	tableDateLayout  = "Jan 02, 2006"
)

// Point is one labelled value in a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// WorkoutRow is a workout formatted for display.
type WorkoutRow struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Duration int    `json:"duration_minutes"`
	Calories int    `json:"calories"`
}

// MeasurementRow is a measurement formatted for display.
type MeasurementRow struct {
	ID     int64    `json:"id"`
	Date   string   `json:"date"`
	Weight float64  `json:"weight_kg"`
	Height *float64 `json:"height_cm,omitempty"`
	BMI    float64  `json:"bmi"`
}

// Dashboard is the summary view of one user's data.
type Dashboard struct {
	TotalWorkouts     int              `json:"total_workouts"`
	TotalCalories     int              `json:"total_calories"`
	CaloriesToday     int              `json:"calories_today"`
	TotalMeasurements int              `json:"total_measurements"`
	LastWeight        string           `json:"last_weight"`
	Status            string           `json:"status"`
	BMI               float64          `json:"bmi"`
	Category          string           `json:"category"`
	WeightSeries      []Point          `json:"weight_series"`
	CalorieSeries     []TypeCalories   `json:"calorie_series"`
	Workouts          []WorkoutRow     `json:"workouts"`
	Measurements      []MeasurementRow `json:"measurements"`
}

// BuildDashboard summarizes workouts and measurements as of today.
// Empty input yields zero totals, N/A labels and empty series.
func BuildDashboard(workouts []models.Workout, measurements []models.Measurement, today time.Time) Dashboard {
	d := Dashboard{
		TotalWorkouts:     len(workouts),
		TotalCalories:     TotalCalories(workouts),
		CaloriesToday:     CaloriesOn(workouts, today),
		TotalMeasurements: len(measurements),
		LastWeight:        NotAvailable,
		Status:            NotAvailable,
		Category:          NotAvailable,
		WeightSeries:      []Point{},
		CalorieSeries:     CaloriesByType(workouts),
		Workouts:          make([]WorkoutRow, 0, len(workouts)),
		Measurements:      make([]MeasurementRow, 0, len(measurements)),
	}

	if latest, ok := LatestMeasurement(measurements); ok {
		d.LastWeight = models.OneDecimal(latest.Weight) + " kg"
		d.BMI = MeasurementBMI(latest)
		d.Category = Category(d.BMI)
		if d.BMI > 0 {
			d.Status = fmt.Sprintf("%s (%s)", d.Category, models.OneDecimal(d.BMI))
		}
	}

	chrono := make([]models.Measurement, len(measurements))
	copy(chrono, measurements)
	sort.SliceStable(chrono, func(i, j int) bool {
		if !chrono[i].RecordDate.Equal(chrono[j].RecordDate) {
			return chrono[i].RecordDate.Before(chrono[j].RecordDate)
		}
		return chrono[i].ID < chrono[j].ID
	})
	for _, m := range chrono {
		d.WeightSeries = append(d.WeightSeries, Point{
			Label: m.RecordDate.Format(seriesDateLayout),
			Value: m.Weight,
		})
	}

	for _, w := range workouts {
		d.Workouts = append(d.Workouts, WorkoutRow{
			ID:       w.ID,
			Date:     w.Date.Format(tableDateLayout),
			Type:     w.Type,
			Duration: w.DurationMinutes,
			Calories: w.Calories(),
		})
	}
	for _, m := range measurements {
		d.Measurements = append(d.Measurements, MeasurementRow{
			ID:     m.ID,
			Date:   m.RecordDate.Format(tableDateLayout),
			Weight: m.Weight,
			Height: m.Height,
			BMI:    MeasurementBMI(m),
		})
	}

	return d
}
