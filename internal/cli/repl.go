package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Stats(ctx context.Context) error
	Progress(ctx context.Context) error
	Complete(ctx context.Context, args []string) error
	Prefs(ctx context.Context) error
	Set(ctx context.Context, args []string) error
	Goal(ctx context.Context, args []string) error
	Exam(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
}

// repl reads commands from in and dispatches them to exec until input ends
// or the user types "exit" or "quit". All output goes through println.
//
//	Not logged in:
//	  help, signup, login, prefs, set, goal, exam, reset, exit | quit
//
//	Logged in, additionally:
//	  whoami, stats, progress, complete <topic> <level> <xp>, logout
//
// Handler errors are reported by the handlers themselves; the loop keeps going.
// Handlers prompt on the same reader, so commands and answers interleave.
type repl struct {
	exec    execIface
	status  func() string
	in      *bufio.Reader
	println func(args ...any)
}

func (r *repl) run(ctx context.Context) {
	a := r.exec
	for {
		r.println(fmt.Sprintf("aptidude %s> ", r.status()))
		line, err := r.in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			r.println("Please log in or sign up first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				r.println("Available commands: whoami, stats, progress, complete, prefs, set, goal, exam, reset, logout, exit")
			} else {
				r.println("Available commands: signup, login, prefs, set, goal, exam, reset, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "progress":
			_ = a.Progress(ctx)

		case "complete":
			_ = a.Complete(ctx, args)

		case "prefs":
			_ = a.Prefs(ctx)

		case "set":
			_ = a.Set(ctx, args)

		case "goal":
			_ = a.Goal(ctx, args)

		case "exam":
			_ = a.Exam(ctx, args)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			r.println("Bye!")
			return

		default:
			r.println("Unknown command:", cmd)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "whoami", "stats", "progress", "complete", "logout":
		return true
	}
	return false
}

// Run resumes a stored session if there is one and starts the REPL on the
// App's input. It blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	if _, _, err := a.session.Resume(ctx); err != nil {
		return fmt.Errorf("resume session: %w", err)
	}
	a.println("Welcome to aptidude (type 'help' for commands)")

	r := &repl{exec: a, status: a.getStatus, in: a.reader, println: a.println}
	r.run(ctx)
	return nil
}
