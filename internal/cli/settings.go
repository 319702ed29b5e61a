package cli

import (
	"context"
	"strings"

	"github.com/aptidude/aptidude/internal/models"
	"github.com/aptidude/aptidude/internal/preferences"
)

// Prefs prints every preference with its effective value.
func (a *App) Prefs(ctx context.Context) error {
	for _, n := range preferences.Names() {
		v, err := a.session.GetPreference(ctx, string(n))
		if err != nil {
			return a.report(ctx, "prefs", err)
		}
		a.printf("%-22s %s\n", n, v)
	}
	return nil
}

// Set changes one preference: set <name> <value>.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.println("Usage: set <name> <value>")
		return errUsage
	}
	v, err := a.session.SetPreference(ctx, args[0], args[1])
	if err != nil {
		return a.report(ctx, "set", err)
	}
	a.printf("%s = %s\n", args[0], v)
	return nil
}

// Goal steps the daily XP goal: goal + or goal -.
func (a *App) Goal(ctx context.Context, args []string) error {
	var delta int
	switch {
	case len(args) == 1 && args[0] == "+":
		delta = models.DailyGoalStep
	case len(args) == 1 && args[0] == "-":
		delta = -models.DailyGoalStep
	default:
		a.println("Usage: goal <+|->")
		return errUsage
	}

	goal, err := a.session.StepDailyGoal(ctx, delta)
	if err != nil {
		return a.report(ctx, "goal", err)
	}
	a.printf("Daily goal: %d XP\n", goal)
	return nil
}

// Exam shows the exam catalogue, or selects one: exam [code].
func (a *App) Exam(ctx context.Context, args []string) error {
	if len(args) == 0 {
		current, err := a.session.GetPreference(ctx, string(preferences.TargetExam))
		if err != nil {
			return a.report(ctx, "exam", err)
		}
		for _, e := range models.TargetExams() {
			mark := " "
			if e.String() == current {
				mark = "*"
			}
			a.printf("%s %-8s %s: %s\n", mark, e, e.Label(), e.Description())
		}
		return nil
	}

	e, err := models.ParseTargetExam(strings.ToUpper(args[0]))
	if err != nil {
		return a.report(ctx, "exam", err)
	}
	if _, err := a.session.SetTargetExam(ctx, e); err != nil {
		return a.report(ctx, "exam", err)
	}
	a.printf("Target exam: %s\n", e.Label())
	return nil
}

// Reset deletes all local data after the user types "yes".
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This deletes all progress and settings. Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		a.println("Cancelled")
		return nil
	}
	if err := a.session.ResetAllData(ctx); err != nil {
		return a.report(ctx, "reset", err)
	}
	return nil
}
