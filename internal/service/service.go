// ABOUTME: Core facade used by the CLI and MCP shells.
// ABOUTME: Validates input, enforces ownership and delegates to storage and summary.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/harperreed/fitness/internal/auth"
	"github.com/harperreed/fitness/internal/logging"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/session"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/harperreed/fitness/internal/summary"
)

var (
	// ErrDuplicateName is returned when registering a taken username.
	ErrDuplicateName = errors.New("username already exists")
	// ErrNotAuthenticated is returned for calls without an open session.
	ErrNotAuthenticated = errors.New("not logged in")
)

// Service is the entry point for every user-facing operation.
type Service struct {
	repo storage.Repository
	log  logging.Logger
	now  func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the clock used for date validation and "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service over repo.
func New(repo storage.Repository, log logging.Logger, opts ...Option) *Service {
	if log == nil {
		log = logging.Nop()
	}
	s := &Service{repo: repo, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate checks credentials. Unknown users and wrong passwords
// return storage.ErrNotFound.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	return s.repo.Authenticate(ctx, strings.TrimSpace(username), password)
}

// Login authenticates and opens a session.
func (s *Service) Login(ctx context.Context, username, password string) (*session.Session, error) {
	return session.Login(ctx, s, username, password, storage.ErrNotFound, s.log)
}

// Registration is the input for creating an account.
type Registration struct {
	Username string
	Password string
	Age      int
	Gender   models.Gender
}

// Register creates a new account. A taken username yields ErrDuplicateName
// without touching storage.
func (s *Service) Register(ctx context.Context, r Registration) (*models.User, error) {
	u := models.NewUser(r.Username, r.Age, r.Gender)
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if r.Password == "" {
		return nil, &models.ValidationError{Field: "password", Message: "password is required"}
	}
	if g, ok := models.ParseGender(string(u.Gender)); ok {
		u.Gender = g
	}

	if s.repo.NameExists(ctx, u.Username) {
		return nil, ErrDuplicateName
	}

	hash, err := auth.HashPassword(r.Password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash

	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user registered", "user_id", u.ID, "username", u.Username)
	return u, nil
}

func (s *Service) owner(sess *session.Session) (int64, error) {
	if !sess.Active() {
		return 0, ErrNotAuthenticated
	}
	return sess.UserID(), nil
}

// LogWorkout validates and saves a new workout for the session user.
func (s *Service) LogWorkout(ctx context.Context, sess *session.Session, w *models.Workout) error {
	uid, err := s.owner(sess)
	if err != nil {
		return err
	}
	w.UserID = uid
	if err := w.Validate(s.now()); err != nil {
		return err
	}
	return s.repo.Save(ctx, w)
}

// UpdateWorkout validates and writes changes to an existing workout.
func (s *Service) UpdateWorkout(ctx context.Context, sess *session.Session, w *models.Workout) error {
	uid, err := s.owner(sess)
	if err != nil {
		return err
	}
	w.UserID = uid
	if err := w.Validate(s.now()); err != nil {
		return err
	}
	return s.repo.Update(ctx, w)
}

// DeleteWorkout removes a workout. Deleting one that is already gone is not an error.
func (s *Service) DeleteWorkout(ctx context.Context, sess *session.Session, w *models.Workout) error {
	uid, err := s.owner(sess)
	if err != nil {
		return err
	}
	w.UserID = uid
	return s.repo.Delete(ctx, w)
}

// FindWorkout fetches one of the session user's workouts.
func (s *Service) FindWorkout(ctx context.Context, sess *session.Session, id int64) (*models.Workout, error) {
	uid, err := s.owner(sess)
	if err != nil {
		return nil, err
	}
	return s.repo.FindWorkout(ctx, uid, id)
}

// LogMeasurement validates and saves a new measurement for the session user.
func (s *Service) LogMeasurement(ctx context.Context, sess *session.Session, m *models.Measurement) error {
	uid, err := s.owner(sess)
	if err != nil {
		return err
	}
	m.UserID = uid
	if err := m.Validate(s.now()); err != nil {
		return err
	}
	return s.repo.Save(ctx, m)
}

// UpdateMeasurement validates and writes changes to an existing measurement.
func (s *Service) UpdateMeasurement(ctx context.Context, sess *session.Session, m *models.Measurement) error {
	uid, err := s.owner(sess)
	if err != nil {
		return err
	}
	m.UserID = uid
	if err := m.Validate(s.now()); err != nil {
		return err
	}
	return s.repo.Update(ctx, m)
}

// DeleteMeasurement removes a measurement. Deleting one that is already gone is not an error.
func (s *Service) DeleteMeasurement(ctx context.Context, sess *session.Session, m *models.Measurement) error {
	uid, err := s.owner(sess)
	if err != nil {
		return err
	}
	m.UserID = uid
	return s.repo.Delete(ctx, m)
}

// FindMeasurement fetches one of the session user's measurements.
func (s *Service) FindMeasurement(ctx context.Context, sess *session.Session, id int64) (*models.Measurement, error) {
	uid, err := s.owner(sess)
	if err != nil {
		return nil, err
	}
	return s.repo.FindMeasurement(ctx, uid, id)
}

// ListWorkouts returns the session user's workouts, oldest first.
// Storage failures are logged and yield an empty list.
func (s *Service) ListWorkouts(ctx context.Context, sess *session.Session) []models.Workout {
	uid, err := s.owner(sess)
	if err != nil {
		return []models.Workout{}
	}
	workouts, err := s.repo.ListWorkoutsByUser(ctx, uid)
	if err != nil {
		sess.Logger().Error(ctx, "list workouts failed", "error", err)
		return []models.Workout{}
	}
	return workouts
}

// ListMeasurements returns the session user's measurements, oldest first.
// Storage failures are logged and yield an empty list.
func (s *Service) ListMeasurements(ctx context.Context, sess *session.Session) []models.Measurement {
	uid, err := s.owner(sess)
	if err != nil {
		return []models.Measurement{}
	}
	measurements, err := s.repo.ListMeasurementsByUser(ctx, uid)
	if err != nil {
		sess.Logger().Error(ctx, "list measurements failed", "error", err)
		return []models.Measurement{}
	}
	return measurements
}

// BuildDashboardSummary summarizes the session user's data as of today.
func (s *Service) BuildDashboardSummary(ctx context.Context, sess *session.Session) summary.Dashboard {
	return summary.BuildDashboard(s.ListWorkouts(ctx, sess), s.ListMeasurements(ctx, sess), models.DateOf(s.now()))
}

// BuildTextReport renders the plain text report for the session user.
func (s *Service) BuildTextReport(ctx context.Context, sess *session.Session) string {
	return summary.BuildReport(s.ListWorkouts(ctx, sess), s.ListMeasurements(ctx, sess))
}

// ReportFileName is the suggested export file name for username.
func ReportFileName(username string) string {
	return fmt.Sprintf("fitness_report_%s.txt", username)
}

// ExportReportToFile writes the text report to path as UTF-8.
func (s *Service) ExportReportToFile(ctx context.Context, sess *session.Session, path string) error {
	if _, err := s.owner(sess); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s.BuildTextReport(ctx, sess)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	sess.Logger().Info(ctx, "report exported", "path", path)
	return nil
}
