package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aptidude/aptidude/internal/logging"
	"github.com/aptidude/aptidude/internal/records"
	"github.com/aptidude/aptidude/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds an App over an in-memory repository. A strings.Reader
// has no descriptor, so passwords are read as plain lines.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *records.MemoryRepository) {
	t.Helper()

	repo := records.NewMemoryRepository()
	var out bytes.Buffer
	a := NewApp(session.New(repo, logging.Nop()), strings.NewReader(input), &out, logging.Nop())
	return a, &out, repo
}

func TestSignup_Success(t *testing.T) {
	a, out, repo := newTestApp(t, "valid_user\na@b.com\nabc123!@\n")

	require.NoError(t, a.Signup(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(valid_user)", a.getStatus())
	assert.Contains(t, out.String(), "Welcome, valid_user!")
	assert.Contains(t, repo.Snapshot(), "current-user")
}

func TestSignup_ShowsChecklistOnRuleFailure(t *testing.T) {
	a, out, repo := newTestApp(t, "ab\na@b.com\nabcdefgh\n")

	err := a.Signup(context.Background())
	require.EqualError(t, err, "Username must be at least 5 characters")
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, repo.Snapshot())

	got := out.String()
	assert.Contains(t, got, "Username:")
	assert.Contains(t, got, "Password:")
	assert.Contains(t, got, "[ ]")
}

func TestLogin_AndWhoAmI(t *testing.T) {
	a, out, _ := newTestApp(t, "jane@example.com\nabc123!@\n")
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "jane <jane@example.com>")

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
}

func TestComplete(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.Complete(ctx, []string{"algebra", "1", "10"}))
	assert.Contains(t, out.String(), "+10 XP (total 10, streak 1)")

	out.Reset()
	require.NoError(t, a.Complete(ctx, []string{"algebra", "1", "10"}))
	assert.Contains(t, out.String(), "already completed")

	require.ErrorIs(t, a.Complete(ctx, []string{"algebra"}), errUsage)
	require.ErrorIs(t, a.Complete(ctx, []string{"algebra", "2", "ten"}), errUsage)

	out.Reset()
	require.NoError(t, a.Stats(ctx))
	assert.Equal(t, "Levels done: 1\nStreak: 1\nXP: 10\n", out.String())

	out.Reset()
	require.NoError(t, a.Progress(ctx))
	assert.Contains(t, out.String(), "algebra")
}

func TestPrefsSetGoalExam(t *testing.T) {
	a, out, repo := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.Prefs(ctx))
	assert.Contains(t, out.String(), "daily-goal")
	assert.Contains(t, out.String(), "GENERAL")

	require.NoError(t, a.Set(ctx, []string{"daily-goal", "33"}))
	assert.Equal(t, "35", repo.Snapshot()["daily-goal"])

	require.NoError(t, a.Goal(ctx, []string{"-"}))
	assert.Equal(t, "30", repo.Snapshot()["daily-goal"])
	require.ErrorIs(t, a.Goal(ctx, []string{"up"}), errUsage)

	require.Error(t, a.Set(ctx, []string{"volume", "11"}))
	require.ErrorIs(t, a.Set(ctx, []string{"volume"}), errUsage)

	require.NoError(t, a.Exam(ctx, []string{"gmat"}))
	assert.Equal(t, "GMAT", repo.Snapshot()["target-exam"])
	require.Error(t, a.Exam(ctx, []string{"sat"}))

	out.Reset()
	require.NoError(t, a.Exam(ctx, nil))
	assert.Contains(t, out.String(), "* GMAT")
}

func TestReset(t *testing.T) {
	a, out, repo := newTestApp(t, "no\nyes\n")
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, []string{"sound-enabled", "false"}))

	require.NoError(t, a.Reset(ctx))
	assert.Contains(t, out.String(), "Cancelled")
	assert.NotEmpty(t, repo.Snapshot())

	require.NoError(t, a.Reset(ctx))
	assert.Empty(t, repo.Snapshot())
	assert.Contains(t, out.String(), "All data deleted")
}

func TestRun_EndToEnd(t *testing.T) {
	a, out, repo := newTestApp(t, strings.Join([]string{
		"signup",
		"valid_user",
		"a@b.com",
		"abc123!@",
		"complete ratios 3 15",
		"stats",
		"exit",
	}, "\n"))

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "Welcome, valid_user!")
	assert.Contains(t, out.String(), "XP: 15")
	assert.Equal(t, "15", repo.Snapshot()["user-xp"])
}

func TestRun_AllOutputGoesToAppWriter(t *testing.T) {
	a, out, _ := newTestApp(t, "whoami\nfoobar\nhelp\nquit\n")

	require.NoError(t, a.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "aptidude > ")
	assert.Contains(t, got, "Please log in or sign up first")
	assert.Contains(t, got, "Unknown command: foobar")
	assert.Contains(t, got, "Available commands: signup")
	assert.Contains(t, got, "Bye!")
}

func TestRun_ResumesStoredUser(t *testing.T) {
	a, _, _ := newTestApp(t, "valid_user\na@b.com\nabc123!@\n")
	ctx := context.Background()
	require.NoError(t, a.Signup(ctx))
	a.session.Logout(ctx)

	require.NoError(t, a.Run(ctx))
	assert.True(t, a.isLoggedIn())
}
