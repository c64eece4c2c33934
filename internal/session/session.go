// ABOUTME: Logged-in session carrying the authenticated user.
// ABOUTME: Created at login, passed to every owner-scoped call, closed at logout.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitness/internal/logging"
	"github.com/harperreed/fitness/internal/models"
)

// ErrInvalidCredentials is returned when login fails for any reason
// other than a storage error.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator resolves a username and password to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// Session is the identity of the logged-in user.
type Session struct {
	ID        uuid.UUID
	User      models.User
	StartedAt time.Time

	log    logging.Logger
	mu     sync.Mutex
	closed bool
}

// New starts a session for an already authenticated user.
func New(user models.User, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	id := uuid.New()
	return &Session{
		ID:        id,
		User:      user,
		StartedAt: time.Now(),
		log:       log.With("session", id.String(), "user", user.Username),
	}
}

// Login authenticates and starts a session. notFound is the error the
// authenticator returns for unknown users or wrong passwords.
func Login(ctx context.Context, a Authenticator, username, password string, notFound error, log logging.Logger) (*Session, error) {
	u, err := a.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, notFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	s := New(*u, log)
	s.log.Info(ctx, "session started")
	return s, nil
}

// UserID is the owner id for every record created in this session.
func (s *Session) UserID() int64 {
	return s.User.ID
}

// Logger returns a logger tagged with the session and user.
func (s *Session) Logger() logging.Logger {
	return s.log
}

// Active reports whether the session is still open.
func (s *Session) Active() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Close ends the session. Closing twice is harmless.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.log.Info(ctx, "session closed", "duration", time.Since(s.StartedAt).Round(time.Millisecond))
}
