package preferences

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aptidude/aptidude/internal/models"
)

var (
	ErrUnknownPreference = errors.New("unknown preference")
	ErrInvalidValue      = errors.New("invalid preference value")
)

// ParseName accepts the storage key of a preference.
func ParseName(s string) (Name, error) {
	for _, n := range Names() {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreference, s)
}

// Get returns the effective value of name in its stored textual form.
func (m *Manager) Get(ctx context.Context, name Name) (string, error) {
	switch name {
	case Notifications, Sound, OfflineMode, DarkMode:
		v, err := m.getBool(ctx, name)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case DailyGoal:
		v, err := m.DailyGoal(ctx)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	case TargetExam:
		v, err := m.TargetExam(ctx)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreference, name)
}

// Set parses value for name, stores it and returns the new effective value in
// textual form. Booleans must be "true" or "false", the daily goal a decimal
// integer (clamped) and the exam one of the exam codes.
func (m *Manager) Set(ctx context.Context, name Name, value string) (string, error) {
	switch name {
	case Notifications, Sound, OfflineMode, DarkMode:
		if value != "true" && value != "false" {
			return "", fmt.Errorf("%w: %s wants true or false, got %q", ErrInvalidValue, name, value)
		}
		v, err := m.setBool(ctx, name, value == "true")
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case DailyGoal:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", fmt.Errorf("%w: %s wants an integer, got %q", ErrInvalidValue, name, value)
		}
		v, err := m.SetDailyGoal(ctx, n)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	case TargetExam:
		e, err := models.ParseTargetExam(value)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		v, err := m.SetTargetExam(ctx, e)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreference, name)
}
