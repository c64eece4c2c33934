// ABOUTME: Export and import of one user's fitness data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is written into every export document.
const ExportVersion = "1.0"

// ExportData is the full export format for one user.
type ExportData struct {
	Version      string               `json:"version" yaml:"version"`
	ExportedAt   time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool         string               `json:"tool" yaml:"tool"`
	User         string               `json:"user" yaml:"user"`
	Workouts     []models.Workout     `json:"workouts" yaml:"workouts"`
	Measurements []models.Measurement `json:"measurements" yaml:"measurements"`
}

// GetUserData collects every workout and measurement owned by user.
func GetUserData(ctx context.Context, q Querier, user models.User) (*ExportData, error) {
	workouts, err := q.ListWorkoutsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	measurements, err := q.ListMeasurementsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return &ExportData{
		Version:      ExportVersion,
		ExportedAt:   time.Now().UTC(),
		Tool:         "fitness",
		User:         user.Username,
		Workouts:     workouts,
		Measurements: measurements,
	}, nil
}

// JSON renders the export as indented JSON.
func (e *ExportData) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML renders the export with dates as plain YYYY-MM-DD strings.
func (e *ExportData) YAML() ([]byte, error) {
	doc := yamlExport{
		Version:      e.Version,
		ExportedAt:   e.ExportedAt.Format(time.RFC3339),
		Tool:         e.Tool,
		User:         e.User,
		Workouts:     make([]yamlWorkout, 0, len(e.Workouts)),
		Measurements: make([]yamlMeasurement, 0, len(e.Measurements)),
	}
	for _, w := range e.Workouts {
		doc.Workouts = append(doc.Workouts, yamlWorkout{
			ID:              w.ID,
			Date:            w.Date.Format(models.DateLayout),
			Type:            w.Type,
			DurationMinutes: w.DurationMinutes,
			CaloriesBurned:  w.CaloriesBurned,
		})
	}
	for _, m := range e.Measurements {
		doc.Measurements = append(doc.Measurements, yamlMeasurement{
			ID:       m.ID,
			Date:     m.RecordDate.Format(models.DateLayout),
			WeightKg: m.Weight,
			HeightCm: m.Height,
		})
	}
	return yaml.Marshal(doc)
}

type yamlExport struct {
	Version      string            `yaml:"version"`
	ExportedAt   string            `yaml:"exported_at"`
	Tool         string            `yaml:"tool"`
	User         string            `yaml:"user"`
	Workouts     []yamlWorkout     `yaml:"workouts"`
	Measurements []yamlMeasurement `yaml:"measurements"`
}

type yamlWorkout struct {
	ID              int64  `yaml:"id"`
	Date            string `yaml:"date"`
	Type            string `yaml:"type"`
	DurationMinutes int    `yaml:"duration_minutes"`
	CaloriesBurned  *int   `yaml:"calories_burned,omitempty"`
}

type yamlMeasurement struct {
	ID       int64    `yaml:"id"`
	Date     string   `yaml:"date"`
	WeightKg float64  `yaml:"weight_kg"`
	HeightCm *float64 `yaml:"height_cm,omitempty"`
}

// Markdown renders the export as Markdown tables.
func (e *ExportData) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Fitness Export - %s\n\n", e.User)
	fmt.Fprintf(&sb, "Generated: %s\n\n", e.ExportedAt.Format(time.RFC3339))

	sb.WriteString("## Workouts\n\n")
	if len(e.Workouts) == 0 {
		sb.WriteString("No workouts recorded.\n\n")
	} else {
		sb.WriteString("| Date | Type | Duration | Calories |\n")
		sb.WriteString("|------|------|----------|----------|\n")
		for _, w := range e.Workouts {
			calories := ""
			if w.CaloriesBurned != nil {
				calories = fmt.Sprintf("%d kcal", *w.CaloriesBurned)
			}
			fmt.Fprintf(&sb, "| %s | %s | %d min | %s |\n",
				w.Date.Format(models.DateLayout), w.Type, w.DurationMinutes, calories)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Measurements\n\n")
	if len(e.Measurements) == 0 {
		sb.WriteString("No measurements recorded.\n")
	} else {
		sb.WriteString("| Date | Weight | Height |\n")
		sb.WriteString("|------|--------|--------|\n")
		for _, m := range e.Measurements {
			height := ""
			if m.Height != nil {
				height = fmt.Sprintf("%.0f cm", *m.Height)
			}
			fmt.Fprintf(&sb, "| %s | %s kg | %s |\n",
				m.RecordDate.Format(models.DateLayout), models.OneDecimal(m.Weight), height)
		}
	}

	return sb.String()
}

// ImportSummary counts records created by an import.
type ImportSummary struct {
	Workouts     int
	Measurements int
}

// ImportData saves every record in data as a new row owned by userID.
// All rows are written in one unit-of-work, so a failure leaves the
// store exactly as it was.
func ImportData(ctx context.Context, g Gateway, userID int64, data *ExportData) (*ImportSummary, error) {
	entities := make([]models.Entity, 0, len(data.Workouts)+len(data.Measurements))
	for i := range data.Workouts {
		w := data.Workouts[i]
		w.ID = 0
		w.UserID = userID
		entities = append(entities, &w)
	}
	for i := range data.Measurements {
		m := data.Measurements[i]
		m.ID = 0
		m.UserID = userID
		entities = append(entities, &m)
	}
	if err := g.SaveAll(ctx, entities...); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	return &ImportSummary{Workouts: len(data.Workouts), Measurements: len(data.Measurements)}, nil
}

// ParseJSON decodes a JSON export document.
func ParseJSON(data []byte) (*ExportData, error) {
	var e ExportData
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return &e, nil
}
