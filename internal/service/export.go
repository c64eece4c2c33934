// ABOUTME: Data export and import for the session user.
// ABOUTME: Formats are JSON, YAML and Markdown; import accepts JSON.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/session"
	"github.com/harperreed/fitness/internal/storage"
)

// ExportFormats lists the accepted export format names.
var ExportFormats = []string{"json", "yaml", "markdown"}

// ExportData renders all of the session user's records in format.
func (s *Service) ExportData(ctx context.Context, sess *session.Session, format string) ([]byte, error) {
	if _, err := s.owner(sess); err != nil {
		return nil, err
	}
	data, err := storage.GetUserData(ctx, s.repo, sess.User)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "json":
		return data.JSON()
	case "yaml", "yml":
		return data.YAML()
	case "markdown", "md":
		return []byte(data.Markdown()), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (use %s)", format, strings.Join(ExportFormats, ", "))
	}
}

// ImportData validates every record in a JSON export, then saves them
// as new records owned by the session user.
func (s *Service) ImportData(ctx context.Context, sess *session.Session, raw []byte) (*storage.ImportSummary, error) {
	uid, err := s.owner(sess)
	if err != nil {
		return nil, err
	}
	data, err := storage.ParseJSON(raw)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range data.Workouts {
		if err := data.Workouts[i].Validate(now); err != nil {
			return nil, fmt.Errorf("workout %d: %w", i+1, err)
		}
	}
	for i := range data.Measurements {
		if err := data.Measurements[i].Validate(now); err != nil {
			return nil, fmt.Errorf("measurement %d: %w", i+1, err)
		}
	}

	summary, err := storage.ImportData(ctx, s.repo, uid, data)
	if err != nil {
		return summary, err
	}
	sess.Logger().Info(ctx, "data imported", "workouts", summary.Workouts, "measurements", summary.Measurements)
	return summary, nil
}
