// Package session is the single entry point for presentation code. It wires
// the credential checks, the identity, preference and progress managers over
// one record repository and tracks whether a user is signed in.
//
// A Facade is meant to be driven from one event loop; it is not safe for
// concurrent use.
package session

import (
	"context"
	"fmt"

	"github.com/aptidude/aptidude/internal/credentials"
	"github.com/aptidude/aptidude/internal/identity"
	"github.com/aptidude/aptidude/internal/logging"
	"github.com/aptidude/aptidude/internal/models"
	"github.com/aptidude/aptidude/internal/preferences"
	"github.com/aptidude/aptidude/internal/progress"
	"github.com/aptidude/aptidude/internal/records"
	"github.com/oklog/ulid/v2"
)

type Facade struct {
	store    *records.Store
	identity *identity.Manager
	prefs    *preferences.Manager
	progress *progress.Store
	log      logging.Logger

	user      *models.User
	sessionID string
	onReset   []func()
}

type options struct {
	identity []identity.Option
	progress []progress.Option
}

type Option func(*options)

// WithTimezone sets the zone used to count streak days.
func WithTimezone(tz string) Option {
	return func(o *options) { o.progress = append(o.progress, progress.WithTimezone(tz)) }
}

func WithIdentityOptions(opts ...identity.Option) Option {
	return func(o *options) { o.identity = append(o.identity, opts...) }
}

func WithProgressOptions(opts ...progress.Option) Option {
	return func(o *options) { o.progress = append(o.progress, opts...) }
}

// New builds a Facade over repo.
func New(repo records.Repository, log logging.Logger, opts ...Option) *Facade {
	if log == nil {
		log = logging.Nop()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := records.NewStore(repo, log)
	return &Facade{
		store:    store,
		identity: identity.NewManager(store, log, o.identity...),
		prefs:    preferences.NewManager(store, log),
		progress: progress.NewStore(store, log, o.progress...),
		log:      log.With("component", "session"),
	}
}

// Login validates email and password and signs in as the email's local part.
func (f *Facade) Login(ctx context.Context, email, password string) (models.User, error) {
	return f.enter(ctx, models.ModeLogin, credentials.Input{Email: email, Password: password})
}

// Signup validates all three fields and creates a new local account,
// replacing any previous one. Earlier progress and settings are kept.
func (f *Facade) Signup(ctx context.Context, username, email, password string) (models.User, error) {
	return f.enter(ctx, models.ModeSignup, credentials.Input{Username: username, Email: email, Password: password})
}

func (f *Facade) enter(ctx context.Context, mode models.Mode, in credentials.Input) (models.User, error) {
	if err := credentials.Validate(mode, in); err != nil {
		f.log.Debug(ctx, "credentials rejected", "mode", mode, "error", err)
		return models.User{}, err
	}

	u, err := f.identity.CreateOrLoginUser(ctx, mode, in)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", mode, err)
	}

	f.begin(ctx, u, string(mode))
	return u, nil
}

// Resume signs back in as the stored user, if there is one.
func (f *Facade) Resume(ctx context.Context) (models.User, bool, error) {
	u, ok, err := f.identity.CurrentUser(ctx)
	if err != nil || !ok {
		return models.User{}, false, err
	}
	f.begin(ctx, u, "resume")
	return u, true, nil
}

func (f *Facade) begin(ctx context.Context, u models.User, how string) {
	f.user = &u
	f.sessionID = ulid.Make().String()
	f.log.Info(ctx, "session started", "session_id", f.sessionID, "user_id", u.ID, "via", how)
}

// Logout ends the session. The stored user and all data stay on the device.
func (f *Facade) Logout(ctx context.Context) {
	f.identity.Logout(ctx)
	if f.user != nil {
		f.log.Info(ctx, "session ended", "session_id", f.sessionID)
	}
	f.user = nil
	f.sessionID = ""
}

// User returns the signed-in user.
func (f *Facade) User() (models.User, bool) {
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

// SessionID identifies the current session in logs; empty when signed out.
func (f *Facade) SessionID() string {
	return f.sessionID
}

// Feedback reports live rule checks for a form being filled in.
func (f *Facade) Feedback(mode models.Mode, in credentials.Input) credentials.Feedback {
	return credentials.LiveFeedback(mode, in)
}

func (f *Facade) Stats(ctx context.Context) (models.UserStats, error) {
	return f.progress.Stats(ctx)
}

// Preferences returns every setting's effective value.
func (f *Facade) Preferences(ctx context.Context) (models.Settings, error) {
	return f.prefs.Settings(ctx)
}

// GetPreference returns one setting, by storage name, in textual form.
func (f *Facade) GetPreference(ctx context.Context, name string) (string, error) {
	n, err := preferences.ParseName(name)
	if err != nil {
		return "", err
	}
	return f.prefs.Get(ctx, n)
}

// SetPreference stores one setting and returns its new effective value.
func (f *Facade) SetPreference(ctx context.Context, name, value string) (string, error) {
	n, err := preferences.ParseName(name)
	if err != nil {
		return "", err
	}
	return f.prefs.Set(ctx, n, value)
}

func (f *Facade) SetTargetExam(ctx context.Context, e models.TargetExam) (models.TargetExam, error) {
	return f.prefs.SetTargetExam(ctx, e)
}

func (f *Facade) StepDailyGoal(ctx context.Context, delta int) (int, error) {
	return f.prefs.StepDailyGoal(ctx, delta)
}

// RecordLevelCompletion credits a completed level; see progress.Store.
func (f *Facade) RecordLevelCompletion(ctx context.Context, topicID, levelID string, xp int) (bool, error) {
	return f.progress.RecordLevelCompletion(ctx, topicID, levelID, xp)
}

// Summary is what the profile screen shows.
type Summary struct {
	LevelsDone int
	Streak     int
	XP         int
	Topics     []models.Progress
}

func (f *Facade) GetProgressSummary(ctx context.Context) (Summary, error) {
	topics, err := f.progress.AllProgress(ctx)
	if err != nil {
		return Summary{}, err
	}
	stats, err := f.progress.Stats(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		LevelsDone: progress.Total(topics),
		Streak:     stats.Streak,
		XP:         stats.XP,
		Topics:     topics,
	}, nil
}

// OnReset registers fn to run after ResetAllData, so callers can rebuild
// their view state as after a fresh start.
func (f *Facade) OnReset(fn func()) {
	f.onReset = append(f.onReset, fn)
}

// ResetAllData deletes every stored record and ends the session.
func (f *Facade) ResetAllData(ctx context.Context) error {
	if err := f.store.RemoveAll(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	f.log.Info(ctx, "all data reset", "session_id", f.sessionID)
	f.user = nil
	f.sessionID = ""

	for _, fn := range f.onReset {
		fn()
	}
	return nil
}
