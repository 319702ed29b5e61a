package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/aptidude/aptidude/internal/logging"
	"github.com/aptidude/aptidude/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type App struct {
	session *session.Facade
	reader  *bufio.Reader
	fd      int
	out     io.Writer
	log     logging.Logger
}

// NewApp builds an App reading commands from in and writing to out. Passwords
// are read without echo only when in is a terminal.
func NewApp(s *session.Facade, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		session: s,
		reader:  bufio.NewReader(in),
		fd:      inputFD(in),
		out:     out,
		log:     log.With("component", "cli"),
	}
	s.OnReset(func() { a.println("All data deleted. Starting fresh.") })
	return a
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.User()
	return ok
}

func (a *App) getStatus() string {
	if u, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// report prints err to the user and hands it back to the caller.
func (a *App) report(ctx context.Context, what string, err error) error {
	a.log.Debug(ctx, what+" failed", "error", err)
	a.println("Error:", err)
	return err
}
