package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errUsage = errors.New("usage")

// Complete records a finished level: complete <topic> <level> <xp>.
func (a *App) Complete(ctx context.Context, args []string) error {
	if len(args) != 3 {
		a.println("Usage: complete <topic> <level> <xp>")
		return errUsage
	}
	xp, err := strconv.Atoi(args[2])
	if err != nil {
		a.println("XP must be a whole number")
		return errUsage
	}

	credited, err := a.session.RecordLevelCompletion(ctx, args[0], args[1], xp)
	if err != nil {
		return a.report(ctx, "complete", err)
	}
	if !credited {
		a.printf("Level %s of %s was already completed\n", args[1], args[0])
		return nil
	}

	stats, err := a.session.Stats(ctx)
	if err != nil {
		return a.report(ctx, "stats", err)
	}
	a.printf("Level complete! +%d XP (total %d, streak %d)\n", max(xp, 0), stats.XP, stats.Streak)
	return nil
}

// Stats prints the profile summary.
func (a *App) Stats(ctx context.Context) error {
	sum, err := a.session.GetProgressSummary(ctx)
	if err != nil {
		return a.report(ctx, "summary", err)
	}
	a.printf("Levels done: %d\nStreak: %d\nXP: %d\n", sum.LevelsDone, sum.Streak, sum.XP)
	return nil
}

// Progress lists completed levels per topic.
func (a *App) Progress(ctx context.Context) error {
	sum, err := a.session.GetProgressSummary(ctx)
	if err != nil {
		return a.report(ctx, "progress", err)
	}
	if len(sum.Topics) == 0 {
		a.println("No levels completed yet")
		return nil
	}
	for _, p := range sum.Topics {
		a.println(fmt.Sprintf("%-20s %s", p.TopicID, strings.Join(p.CompletedLevels, ", ")))
	}
	return nil
}
