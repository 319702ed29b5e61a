// Package preferences owns the user's settings. Every setting lives under its
// own key so a damaged value only ever affects that one setting.
package preferences

import (
	"context"
	"fmt"

	"github.com/aptidude/aptidude/internal/logging"
	"github.com/aptidude/aptidude/internal/models"
	"github.com/aptidude/aptidude/internal/records"
)

// Name is both the public name of a preference and its storage key.
type Name string

const (
	Notifications Name = "notifications-enabled"
	Sound         Name = "sound-enabled"
	OfflineMode   Name = "offline-mode"
	DarkMode      Name = "dark-mode"
	DailyGoal     Name = "daily-goal"
	TargetExam    Name = "target-exam"
)

// Names lists every preference in display order.
func Names() []Name {
	return []Name{Notifications, Sound, OfflineMode, DarkMode, DailyGoal, TargetExam}
}

var defaults = models.DefaultSettings()

var (
	boolFields = map[Name]records.Field[bool]{
		Notifications: records.Bool(string(Notifications), defaults.NotificationsEnabled),
		Sound:         records.Bool(string(Sound), defaults.SoundEnabled),
		OfflineMode:   records.Bool(string(OfflineMode), defaults.OfflineMode),
		DarkMode:      records.Bool(string(DarkMode), defaults.DarkMode),
	}

	dailyGoalField = records.Int(string(DailyGoal), defaults.DailyGoalXP, models.ClampDailyGoal)

	targetExamField = records.Text(string(TargetExam), defaults.TargetExam,
		models.TargetExam.String, models.ParseTargetExam)
)

type Manager struct {
	store *records.Store
	log   logging.Logger
}

func NewManager(store *records.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{store: store, log: log.With("component", "preferences")}
}

func (m *Manager) Notifications(ctx context.Context) (bool, error) {
	return m.getBool(ctx, Notifications)
}

func (m *Manager) SetNotifications(ctx context.Context, v bool) (bool, error) {
	return m.setBool(ctx, Notifications, v)
}

func (m *Manager) Sound(ctx context.Context) (bool, error) {
	return m.getBool(ctx, Sound)
}

func (m *Manager) SetSound(ctx context.Context, v bool) (bool, error) {
	return m.setBool(ctx, Sound, v)
}

func (m *Manager) OfflineMode(ctx context.Context) (bool, error) {
	return m.getBool(ctx, OfflineMode)
}

func (m *Manager) SetOfflineMode(ctx context.Context, v bool) (bool, error) {
	return m.setBool(ctx, OfflineMode, v)
}

func (m *Manager) DarkMode(ctx context.Context) (bool, error) {
	return m.getBool(ctx, DarkMode)
}

func (m *Manager) SetDarkMode(ctx context.Context, v bool) (bool, error) {
	return m.setBool(ctx, DarkMode, v)
}

func (m *Manager) DailyGoal(ctx context.Context) (int, error) {
	return records.Load(ctx, m.store, dailyGoalField)
}

// SetDailyGoal stores v clamped to [5,100] in steps of 5 and returns the
// stored value. Out-of-range input is clamped, not rejected.
func (m *Manager) SetDailyGoal(ctx context.Context, v int) (int, error) {
	eff := models.ClampDailyGoal(v)
	if err := records.Save(ctx, m.store, dailyGoalField, eff); err != nil {
		return 0, err
	}
	m.log.Debug(ctx, "preference set", "name", DailyGoal, "value", eff)
	return eff, nil
}

// StepDailyGoal moves the goal by delta from its current effective value.
func (m *Manager) StepDailyGoal(ctx context.Context, delta int) (int, error) {
	cur, err := m.DailyGoal(ctx)
	if err != nil {
		return 0, err
	}
	return m.SetDailyGoal(ctx, cur+delta)
}

func (m *Manager) TargetExam(ctx context.Context) (models.TargetExam, error) {
	return records.Load(ctx, m.store, targetExamField)
}

// SetTargetExam rejects anything but one of the models.Exam* values.
func (m *Manager) SetTargetExam(ctx context.Context, e models.TargetExam) (models.TargetExam, error) {
	if !e.IsValid() {
		return models.TargetExam{}, models.ErrUnknownExam
	}
	if err := records.Save(ctx, m.store, targetExamField, e); err != nil {
		return models.TargetExam{}, err
	}
	m.log.Debug(ctx, "preference set", "name", TargetExam, "value", e.String())
	return e, nil
}

// Settings reads every preference.
func (m *Manager) Settings(ctx context.Context) (models.Settings, error) {
	var (
		s   models.Settings
		err error
	)
	if s.NotificationsEnabled, err = m.Notifications(ctx); err != nil {
		return models.Settings{}, err
	}
	if s.SoundEnabled, err = m.Sound(ctx); err != nil {
		return models.Settings{}, err
	}
	if s.OfflineMode, err = m.OfflineMode(ctx); err != nil {
		return models.Settings{}, err
	}
	if s.DarkMode, err = m.DarkMode(ctx); err != nil {
		return models.Settings{}, err
	}
	if s.DailyGoalXP, err = m.DailyGoal(ctx); err != nil {
		return models.Settings{}, err
	}
	if s.TargetExam, err = m.TargetExam(ctx); err != nil {
		return models.Settings{}, err
	}
	return s, nil
}

func (m *Manager) getBool(ctx context.Context, name Name) (bool, error) {
	return records.Load(ctx, m.store, boolFields[name])
}

func (m *Manager) setBool(ctx context.Context, name Name, v bool) (bool, error) {
	if err := records.Save(ctx, m.store, boolFields[name], v); err != nil {
		return false, fmt.Errorf("set %s: %w", name, err)
	}
	m.log.Debug(ctx, "preference set", "name", name, "value", v)
	return v, nil
}
