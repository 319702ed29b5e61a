// Package identity owns the current local user record.
//
// There is no authentication: signup stores the typed username, login
// derives one from the email. Input must already have passed
// credentials.Validate.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aptidude/aptidude/internal/credentials"
	"github.com/aptidude/aptidude/internal/logging"
	"github.com/aptidude/aptidude/internal/models"
	"github.com/aptidude/aptidude/internal/records"
	"github.com/google/uuid"
)

// KeyCurrentUser is the only key this package writes.
const KeyCurrentUser = "current-user"

// ErrNotValidated is returned when the manager receives input that could not
// have passed validation. It marks a caller bug.
var ErrNotValidated = errors.New("identity: input was not validated")

var currentUser = records.JSON(KeyCurrentUser, models.User{})

type Manager struct {
	store *records.Store
	log   logging.Logger
	newID func() uuid.UUID
	now   func() time.Time
}

type Option func(*Manager)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator overrides user id generation.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(m *Manager) { m.newID = gen }
}

func NewManager(store *records.Store, log logging.Logger, opts ...Option) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	m := &Manager{
		store: store,
		log:   log.With("component", "identity"),
		newID: uuid.New,
		now:   time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// CreateOrLoginUser synthesizes a fresh User, persists it as the current user
// and returns it. A previous user record is overwritten, never merged.
func (m *Manager) CreateOrLoginUser(ctx context.Context, mode models.Mode, in credentials.Input) (models.User, error) {
	username, err := usernameFor(mode, in)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:        m.newID(),
		Username:  username,
		Email:     in.Email,
		CreatedAt: m.now().UTC(),
	}

	if err := records.Save(ctx, m.store, currentUser, u); err != nil {
		return models.User{}, fmt.Errorf("save current user: %w", err)
	}

	m.log.Info(ctx, "current user stored", "user_id", u.ID, "mode", mode)
	return u, nil
}

// CurrentUser returns the stored user; ok is false when there is none or the
// stored record is unreadable.
func (m *Manager) CurrentUser(ctx context.Context) (u models.User, ok bool, err error) {
	u, err = records.Load(ctx, m.store, currentUser)
	if err != nil {
		return models.User{}, false, err
	}
	if u.ID == uuid.Nil {
		return models.User{}, false, nil
	}
	return u, true, nil
}

// Logout keeps the stored user so a later login can pick it back up; ending
// the session is up to the caller.
func (m *Manager) Logout(ctx context.Context) {
	m.log.Info(ctx, "logout")
}

func usernameFor(mode models.Mode, in credentials.Input) (string, error) {
	if in.Email == "" {
		return "", fmt.Errorf("%w: empty email", ErrNotValidated)
	}

	switch mode {
	case models.ModeSignup:
		if in.Username == "" {
			return "", fmt.Errorf("%w: empty username", ErrNotValidated)
		}
		return in.Username, nil
	case models.ModeLogin:
		local, _, _ := strings.Cut(in.Email, "@")
		return local, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrNotValidated, mode)
	}
}
