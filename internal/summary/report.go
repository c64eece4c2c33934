// ABOUTME: Fixed-width plain text fitness report.
// ABOUTME: Summary block followed by every workout and measurement.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/fitness/internal/models"
)

const reportDateLayout = "02/01/2006"

const (
	workoutHeaderFmt     = "%-10s  %-10s  %-12s  %14s  %15s"
	workoutRowFmt        = "%-10d  %-10s  %-12s  %14d  %15s"
	measurementHeaderFmt = "%-14s  %-10s  %11s  %11s  %5s"
	measurementRowFmt    = "%-14d  %-10s  %11s  %11s  %5s"
)

// BuildReport renders the plain text report. Weights and BMI have one
// decimal; unset calories and heights are shown as "-".
func BuildReport(workouts []models.Workout, measurements []models.Measurement) string {
	var b strings.Builder

	title := "--- COMPREHENSIVE FITNESS SUMMARY ---"
	b.WriteString(title + "\n")
	summaryLine(&b, "Metric", "Value")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")

	summaryLine(&b, "Total Workouts", strconv.Itoa(len(workouts)))
	summaryLine(&b, "Total Calories", strconv.Itoa(TotalCalories(workouts)))
	summaryLine(&b, "Total Measurements", strconv.Itoa(len(measurements)))

	weight, bmi, status := NotAvailable, NotAvailable, NotAvailable
	if latest, ok := LatestMeasurement(measurements); ok {
		weight = models.OneDecimal(latest.Weight) + " kg"
		if v := MeasurementBMI(latest); v > 0 {
			bmi = models.OneDecimal(v)
			status = Category(v)
		}
	}
	summaryLine(&b, "Latest Weight", weight)
	summaryLine(&b, "Latest BMI", bmi)
	summaryLine(&b, "Health Status", status)

	b.WriteString("\n--- DETAILED WORKOUTS ---\n")
	if len(workouts) == 0 {
		b.WriteString("No workouts recorded yet.\n")
	} else {
		header := fmt.Sprintf(workoutHeaderFmt, "Workout ID", "Date", "Type", "Duration (min)", "Calories Burned")
		b.WriteString(header + "\n")
		b.WriteString(strings.Repeat("-", len(header)) + "\n")
		for _, w := range workouts {
			calories := "-"
			if w.CaloriesBurned != nil {
				calories = strconv.Itoa(*w.CaloriesBurned)
			}
			fmt.Fprintf(&b, workoutRowFmt+"\n",
				w.ID, w.Date.Format(reportDateLayout), w.Type, w.DurationMinutes, calories)
		}
	}

	b.WriteString("\n--- DETAILED MEASUREMENTS ---\n")
	if len(measurements) == 0 {
		b.WriteString("No measurements recorded yet.\n")
	} else {
		header := fmt.Sprintf(measurementHeaderFmt, "Measurement ID", "Date", "Weight (kg)", "Height (cm)", "BMI")
		b.WriteString(header + "\n")
		b.WriteString(strings.Repeat("-", len(header)) + "\n")
		for _, m := range measurements {
			height, bmi := "-", NotAvailable
			if m.Height != nil {
				height = models.OneDecimal(*m.Height)
			}
			if v := MeasurementBMI(m); v > 0 {
				bmi = models.OneDecimal(v)
			}
			fmt.Fprintf(&b, measurementRowFmt+"\n",
				m.ID, m.RecordDate.Format(reportDateLayout), models.OneDecimal(m.Weight), height, bmi)
		}
	}

	return b.String()
}

func summaryLine(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-20s%s\n", label, value)
}
