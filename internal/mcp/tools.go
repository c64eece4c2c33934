// ABOUTME: MCP tool implementations for workouts, measurements and summaries.
// ABOUTME: Inputs are validated by the service layer before anything is stored.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/summary"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout (date, type, duration in minutes, optional calories burned)",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List logged workouts oldest first, optionally filtered by type",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Change fields of an existing workout by ID",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_measurement",
		Description: "Record body weight in kg and optional height in cm",
	}, s.handleLogMeasurement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_measurements",
		Description: "List body measurements oldest first with BMI",
	}, s.handleListMeasurements)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_measurement",
		Description: "Delete a measurement by ID",
	}, s.handleDeleteMeasurement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_bmi",
		Description: "Calculate BMI and its category from weight and height",
	}, s.handleCalculateBMI)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Get totals, latest weight, BMI status and chart series",
	}, s.handleGetDashboard)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_report",
		Description: "Get the full plain text fitness report",
	}, s.handleGetReport)
}

// Tool input/output types

type logWorkoutInput struct {
	Date            string `json:"date,omitempty" jsonschema:"Workout date as YYYY-MM-DD, defaults to today"`
	Type            string `json:"type" jsonschema:"Workout type such as Running, Cycling, Swimming, Walking, Weightlifting, Yoga, HIIT or Other"`
	DurationMinutes int    `json:"duration_minutes" jsonschema:"Duration in minutes (1-600)"`
	CaloriesBurned  *int   `json:"calories_burned,omitempty" jsonschema:"Calories burned (0-5000)"`
}

type updateWorkoutInput struct {
	ID              int64  `json:"id" jsonschema:"Workout ID"`
	Date            string `json:"date,omitempty" jsonschema:"New date as YYYY-MM-DD"`
	Type            string `json:"type,omitempty" jsonschema:"New workout type"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"New duration in minutes"`
	CaloriesBurned  *int   `json:"calories_burned,omitempty" jsonschema:"New calories burned"`
}

type workoutOutput struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  *int   `json:"calories_burned,omitempty"`
	Message         string `json:"message,omitempty"`
}

type listWorkoutsInput struct {
	Type  string `json:"type,omitempty" jsonschema:"Only return workouts of this type"`
	Limit int    `json:"limit,omitempty" jsonschema:"Return only the most recent N workouts"`
}

type listWorkoutsOutput struct {
	Count    int             `json:"count"`
	Workouts []workoutOutput `json:"workouts"`
}

type idInput struct {
	ID int64 `json:"id" jsonschema:"Record ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logMeasurementInput struct {
	Date     string   `json:"date,omitempty" jsonschema:"Measurement date as YYYY-MM-DD, defaults to today"`
	WeightKg float64  `json:"weight_kg" jsonschema:"Body weight in kilograms"`
	HeightCm *float64 `json:"height_cm,omitempty" jsonschema:"Height in centimeters"`
}

type measurementOutput struct {
	ID       int64    `json:"id"`
	Date     string   `json:"date"`
	WeightKg float64  `json:"weight_kg"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	BMI      float64  `json:"bmi"`
	Category string   `json:"category"`
	Message  string   `json:"message,omitempty"`
}

type listMeasurementsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Return only the most recent N measurements"`
}

type listMeasurementsOutput struct {
	Count        int                 `json:"count"`
	Measurements []measurementOutput `json:"measurements"`
}

type bmiInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"Body weight in kilograms"`
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimeters"`
}

type bmiOutput struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

type emptyInput struct{}

type reportOutput struct {
	Report string `json:"report"`
}

func dateOrToday(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Today(), nil
	}
	return models.ParseDate(s)
}

func toWorkoutOutput(w models.Workout) workoutOutput {
	return workoutOutput{
		ID:              w.ID,
		Date:            w.Date.Format(models.DateLayout),
		Type:            w.Type,
		DurationMinutes: w.DurationMinutes,
		CaloriesBurned:  w.CaloriesBurned,
	}
}

func toMeasurementOutput(m models.Measurement) measurementOutput {
	bmi := summary.MeasurementBMI(m)
	return measurementOutput{
		ID:       m.ID,
		Date:     m.RecordDate.Format(models.DateLayout),
		WeightKg: m.Weight,
		HeightCm: m.Height,
		BMI:      bmi,
		Category: summary.Category(bmi),
	}
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	date, err := dateOrToday(input.Date)
	if err != nil {
		return nil, workoutOutput{}, err
	}

	w := models.NewWorkout(s.sess.UserID(), date, input.Type, input.DurationMinutes)
	w.CaloriesBurned = input.CaloriesBurned
	if err := s.svc.LogWorkout(ctx, s.sess, w); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	out := toWorkoutOutput(*w)
	out.Message = fmt.Sprintf("Logged %s workout on %s (ID: %d)", w.Type, out.Date, w.ID)
	return nil, out, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, listWorkoutsOutput, error) {
	var out []workoutOutput
	for _, w := range s.svc.ListWorkouts(ctx, s.sess) {
		if input.Type != "" && !strings.EqualFold(w.Type, input.Type) {
			continue
		}
		out = append(out, toWorkoutOutput(w))
	}
	if input.Limit > 0 && len(out) > input.Limit {
		out = out[len(out)-input.Limit:]
	}
	if out == nil {
		out = []workoutOutput{}
	}
	return nil, listWorkoutsOutput{Count: len(out), Workouts: out}, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.svc.FindWorkout(ctx, s.sess, input.ID)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("workout %d: %w", input.ID, err)
	}

	if input.Date != "" {
		d, err := models.ParseDate(input.Date)
		if err != nil {
			return nil, workoutOutput{}, err
		}
		w.Date = d
	}
	if input.Type != "" {
		w.Type = strings.TrimSpace(input.Type)
	}
	if input.DurationMinutes != 0 {
		w.DurationMinutes = input.DurationMinutes
	}
	if input.CaloriesBurned != nil {
		w.CaloriesBurned = input.CaloriesBurned
	}

	if err := s.svc.UpdateWorkout(ctx, s.sess, w); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to update workout: %w", err)
	}

	out := toWorkoutOutput(*w)
	out.Message = fmt.Sprintf("Updated workout %d", w.ID)
	return nil, out, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.svc.DeleteWorkout(ctx, s.sess, &models.Workout{ID: input.ID}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout %d", input.ID)}, nil
}

func (s *Server) handleLogMeasurement(ctx context.Context, req *mcp.CallToolRequest, input logMeasurementInput) (*mcp.CallToolResult, measurementOutput, error) {
	date, err := dateOrToday(input.Date)
	if err != nil {
		return nil, measurementOutput{}, err
	}

	m := models.NewMeasurement(s.sess.UserID(), date, input.WeightKg)
	m.Height = input.HeightCm
	if err := s.svc.LogMeasurement(ctx, s.sess, m); err != nil {
		return nil, measurementOutput{}, fmt.Errorf("failed to log measurement: %w", err)
	}

	out := toMeasurementOutput(*m)
	out.Message = fmt.Sprintf("Recorded %s kg on %s (ID: %d)", models.OneDecimal(m.Weight), out.Date, m.ID)
	return nil, out, nil
}

func (s *Server) handleListMeasurements(ctx context.Context, req *mcp.CallToolRequest, input listMeasurementsInput) (*mcp.CallToolResult, listMeasurementsOutput, error) {
	measurements := s.svc.ListMeasurements(ctx, s.sess)
	if input.Limit > 0 && len(measurements) > input.Limit {
		measurements = measurements[len(measurements)-input.Limit:]
	}

	out := make([]measurementOutput, 0, len(measurements))
	for _, m := range measurements {
		out = append(out, toMeasurementOutput(m))
	}
	return nil, listMeasurementsOutput{Count: len(out), Measurements: out}, nil
}

func (s *Server) handleDeleteMeasurement(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.svc.DeleteMeasurement(ctx, s.sess, &models.Measurement{ID: input.ID}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete measurement: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted measurement %d", input.ID)}, nil
}

func (s *Server) handleCalculateBMI(ctx context.Context, req *mcp.CallToolRequest, input bmiInput) (*mcp.CallToolResult, bmiOutput, error) {
	bmi := summary.BMI(input.WeightKg, &input.HeightCm)
	return nil, bmiOutput{BMI: bmi, Category: summary.Category(bmi)}, nil
}

func (s *Server) handleGetDashboard(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, summary.Dashboard, error) {
	return nil, s.svc.BuildDashboardSummary(ctx, s.sess), nil
}

func (s *Server) handleGetReport(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, reportOutput, error) {
	return nil, reportOutput{Report: s.svc.BuildTextReport(ctx, s.sess)}, nil
}
