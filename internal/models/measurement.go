// ABOUTME: Measurement model for body weight and height records.
// ABOUTME: BMI is derived from these values and never stored.
package models

import (
	"math"
	"time"
)

const (
	MaxWeightKg = 500.0
	MaxHeightCm = 300.0
)

// Measurement is a dated body measurement.
type Measurement struct {
	ID         int64     `json:"id" yaml:"id"`
	UserID     int64     `json:"user_id" yaml:"user_id"`
	RecordDate time.Time `json:"record_date" yaml:"record_date"`
	Weight     float64   `json:"weight_kg" yaml:"weight_kg"`                     // kilograms
	Height     *float64  `json:"height_cm,omitempty" yaml:"height_cm,omitempty"` // centimeters, optional
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewMeasurement creates an unsaved Measurement for the given owner.
func NewMeasurement(userID int64, date time.Time, weightKg float64) *Measurement {
	return &Measurement{
		UserID:     userID,
		RecordDate: DateOf(date),
		Weight:     weightKg,
		CreatedAt:  time.Now().UTC(),
	}
}

// WithHeight sets the height in centimeters.
func (m *Measurement) WithHeight(cm float64) *Measurement {
	m.Height = &cm
	return m
}

func (m *Measurement) Key() int64   { return m.ID }
func (m *Measurement) Kind() string { return "measurement" }

// Validate checks field bounds. now is used to reject future dates.
func (m *Measurement) Validate(now time.Time) error {
	if m.RecordDate.IsZero() {
		return invalid("date", "please select a date")
	}
	if afterDay(m.RecordDate, now) {
		return invalid("date", "measurement date cannot be in the future")
	}
	if !finite(m.Weight) || m.Weight <= 0 || m.Weight > MaxWeightKg {
		return invalid("weight", "please enter a valid weight (0-%.0f kg)", MaxWeightKg)
	}
	if m.Height != nil && (!finite(*m.Height) || *m.Height <= 0 || *m.Height > MaxHeightCm) {
		return invalid("height", "please enter a valid height (0-%.0f cm)", MaxHeightCm)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
