package credentials

import (
	"errors"

	"github.com/aptidude/aptidude/internal/models"
)

var ErrValidation = errors.New("validation error")

// Reason identifies which submission rule failed.
type Reason int

const (
	ReasonEmptyField Reason = iota + 1
	ReasonUsernameTooShort
	ReasonUsernameChars
	ReasonPasswordTooShort
	ReasonPasswordNoLetter
	ReasonPasswordNoNumber
	ReasonPasswordNoSpecial
)

var messages = map[Reason]string{
	ReasonEmptyField:        "Please fill in all fields",
	ReasonUsernameTooShort:  "Username must be at least 5 characters",
	ReasonUsernameChars:     "Username can only contain letters and underscores",
	ReasonPasswordTooShort:  "Password must be at least 8 characters",
	ReasonPasswordNoLetter:  "Password must contain at least 1 letter",
	ReasonPasswordNoNumber:  "Password must contain at least 1 number",
	ReasonPasswordNoSpecial: "Password must contain at least 1 special character (!@#$%^&* etc)",
}

// ValidationError carries the single message shown to the user.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func fail(r Reason) *ValidationError {
	return &ValidationError{Reason: r, Message: messages[r]}
}

// Input is what the form submits. Username is ignored in login mode.
type Input struct {
	Username string
	Email    string
	Password string
}

// Validate returns nil or the first failing rule as a *ValidationError, in
// this order: empty fields, username length, username characters (signup
// only), then password length, letter, number, special character.
func Validate(mode models.Mode, in Input) error {
	signup := mode == models.ModeSignup

	if in.Email == "" || in.Password == "" || (signup && in.Username == "") {
		return fail(ReasonEmptyField)
	}

	if signup {
		checks := Index(UsernameChecks(in.Username))
		if !checks[RuleMinLength] {
			return fail(ReasonUsernameTooShort)
		}
		if !checks[RuleValidChars] {
			return fail(ReasonUsernameChars)
		}
	}

	checks := Index(PasswordChecks(in.Password))
	switch {
	case !checks[RuleMinLength]:
		return fail(ReasonPasswordTooShort)
	case !checks[RuleHasLetter]:
		return fail(ReasonPasswordNoLetter)
	case !checks[RuleHasNumber]:
		return fail(ReasonPasswordNoNumber)
	case !checks[RuleHasSpecial]:
		return fail(ReasonPasswordNoSpecial)
	}
	return nil
}
