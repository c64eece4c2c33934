// ABOUTME: Body mass index calculation and classification.
// ABOUTME: BMI is always derived from a measurement, never stored.
package summary

import (
	"math"

	"github.com/harperreed/fitness/internal/models"
)

// NotAvailable is shown wherever a value cannot be computed.
const NotAvailable = "N/A"

// BMI returns weight / (height in meters)^2 rounded to one decimal.
// It returns 0 when height is missing or not positive, or when either
// input is not a finite number.
func BMI(weightKg float64, heightCm *float64) float64 {
	if heightCm == nil || !(*heightCm > 0) || math.IsInf(*heightCm, 0) {
		return 0
	}
	m := *heightCm / 100
	bmi := math.Round(weightKg/(m*m)*10) / 10
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0
	}
	return bmi
}

// MeasurementBMI is BMI for a stored measurement.
func MeasurementBMI(m models.Measurement) float64 {
	return BMI(m.Weight, m.Height)
}

// Category classifies a BMI value.
func Category(bmi float64) string {
	switch {
	case math.IsNaN(bmi) || bmi <= 0:
		return NotAvailable
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
