package cli

import (
	"context"
	"errors"

	"github.com/aptidude/aptidude/internal/credentials"
	"github.com/aptidude/aptidude/internal/models"
)

// Signup prompts for username, email and password and creates a local
// account. When a rule fails, the checklists for the entered values are shown.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.fd, a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	u, err := a.session.Signup(ctx, username, email, string(password))
	if err != nil {
		if errors.Is(err, credentials.ErrValidation) {
			a.printFeedback(a.session.Feedback(models.ModeSignup, credentials.Input{
				Username: username, Email: email, Password: string(password),
			}))
		}
		return a.report(ctx, "signup", err)
	}

	a.printf("Welcome, %s!\n", u.Username)
	return nil
}

// Login prompts for email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.fd, a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	u, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return a.report(ctx, "login", err)
	}

	a.printf("Welcome back, %s!\n", u.Username)
	return nil
}

// Logout ends the session. Stored data stays on the device.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(context.Context) error {
	u, ok := a.session.User()
	if !ok {
		a.println("Not logged in")
		return nil
	}
	a.printf("%s <%s>, joined %s\n", u.Username, u.Email, u.CreatedAt.Format("2006-01-02"))
	return nil
}

func (a *App) printFeedback(fb credentials.Feedback) {
	show := func(title string, checks []credentials.Check) {
		if checks == nil {
			return
		}
		a.println(title)
		for _, c := range checks {
			mark := "[ ]"
			if c.Passed {
				mark = "[x]"
			}
			a.println(" ", mark, c.Label)
		}
	}
	show("Username:", fb.UsernameChecks)
	show("Password:", fb.PasswordChecks)
}
