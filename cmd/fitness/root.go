// ABOUTME: Root Cobra command for fitness CLI.
// ABOUTME: Opens storage and the login session in PersistentPreRunE and tears them down after.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/harperreed/fitness/internal/config"
	"github.com/harperreed/fitness/internal/logging"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/service"
	"github.com/harperreed/fitness/internal/session"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/spf13/cobra"
)

// annotationAuth marks commands that run on behalf of a logged-in user.
const annotationAuth = "fitness/auth"

var authRequired = map[string]string{annotationAuth: "true"}

var (
	flagUser string

	cfg    *config.Config
	logger logging.Logger
	repo   *storage.DB
	svc    *service.Service
	sess   *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Personal fitness tracker",
	Long: `Fitness tracks workouts and body measurements for one or more users.

QUICK START:

  $ fitness register --user alice --age 30 --gender female
  $ fitness --user alice workout add Running --duration 30 --calories 300
  $ fitness --user alice measure add 70.5 --height 175
  $ fitness --user alice dashboard
  $ fitness --user alice report --save

AUTHENTICATION:

  Every command except register and migrate acts as the user named by
  --user (or FITNESS_USER). The password is read from FITNESS_PASSWORD,
  or prompted for when running in a terminal.

MCP INTEGRATION:

  Run 'fitness mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  SQLite at ~/.local/share/fitness/fitness.db by default. Set "backend"
  and "dsn" in ~/.config/fitness/config.json, a .env file, or the
  FITNESS_BACKEND and FITNESS_DSN environment variables to use PostgreSQL
  or MySQL instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger = logging.New(os.Stderr, cfg.GetLogLevel())

		repo, err = cfg.OpenStorage(cmd.Context(), logger)
		if err != nil {
			return err
		}
		svc = service.New(repo, logger)

		if cmd.Annotations[annotationAuth] != "true" {
			return nil
		}

		username, err := resolveUser()
		if err != nil {
			return err
		}
		password, err := resolvePassword(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		sess, err = svc.Login(cmd.Context(), username, password)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown(cmd)
	},
}

// teardown closes the session and the store. Safe to call more than once.
func teardown(cmd *cobra.Command) error {
	if sess != nil {
		sess.Close(cmd.Context())
		sess = nil
	}
	if repo != nil {
		err := repo.Close()
		repo = nil
		return err
	}
	return nil
}

func resolveUser() (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	if u := os.Getenv("FITNESS_USER"); u != "" {
		return u, nil
	}
	return "", errors.New("no user given: pass --user or set FITNESS_USER")
}

// describeError turns core errors into a single user-facing line.
// Context added by wrapping, such as "workout 2: ", is kept in front of
// the friendly message.
func describeError(err error) string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return wrapPrefix(err, verr) + verr.Message
	}
	var perr *storage.PersistenceError
	if errors.As(err, &perr) {
		return wrapPrefix(err, perr) + fmt.Sprintf("operation failed: %v", perr.Err)
	}
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, service.ErrDuplicateName):
		return "username already exists, please choose another"
	}
	return err.Error()
}

// wrapPrefix returns the text that fmt.Errorf wrapping put before inner.
func wrapPrefix(err, inner error) string {
	prefix, ok := strings.CutSuffix(err.Error(), inner.Error())
	if !ok {
		return ""
	}
	return prefix
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "username to act as (default $FITNESS_USER)")
}
