// Package credentials validates what a person types into the login and
// signup forms. Everything here is pure: no state, no I/O.
//
// Two kinds of checks are offered. Rule checklists (UsernameChecks,
// PasswordChecks) report each rule independently so a form can tick them off
// while the user types. Validate is the submission check: it runs the rules
// in a fixed order and returns only the first failure.
package credentials

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLength = 5
	MinPasswordLength = 8

	// SpecialCharacters is the set a password must draw at least one character from.
	SpecialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// Rule names a single check.
type Rule string

const (
	RuleMinLength  Rule = "minLength"
	RuleValidChars Rule = "validChars"
	RuleHasLetter  Rule = "hasLetter"
	RuleHasNumber  Rule = "hasNumber"
	RuleHasSpecial Rule = "hasSpecial"
)

// Check is the outcome of one rule with the hint shown next to it.
type Check struct {
	Rule   Rule
	Label  string
	Passed bool
}

var usernameChars = regexp.MustCompile(`^[A-Za-z_]*$`)

// UsernameChecks evaluates the username rules. The empty string passes
// validChars so an untouched field is not flagged.
func UsernameChecks(username string) []Check {
	return []Check{
		{Rule: RuleMinLength, Label: "At least 5 characters", Passed: utf8.RuneCountInString(username) >= MinUsernameLength},
		{Rule: RuleValidChars, Label: "Only letters and underscores", Passed: usernameChars.MatchString(username)},
	}
}

// PasswordChecks evaluates the password rules.
func PasswordChecks(password string) []Check {
	return []Check{
		{Rule: RuleMinLength, Label: "At least 8 characters", Passed: utf8.RuneCountInString(password) >= MinPasswordLength},
		{Rule: RuleHasLetter, Label: "At least 1 letter", Passed: hasLetter(password)},
		{Rule: RuleHasNumber, Label: "At least 1 number", Passed: hasDigit(password)},
		{Rule: RuleHasSpecial, Label: "At least 1 special character (!@#$%^&* etc)", Passed: hasSpecial(password)},
	}
}

// IsUsernameValid is true for the empty string or when every username rule
// passes. The empty case only gates live feedback; submission still rejects it.
func IsUsernameValid(username string) bool {
	return username == "" || allPassed(UsernameChecks(username))
}

func IsPasswordValid(password string) bool {
	return allPassed(PasswordChecks(password))
}

// Index turns checks into a rule-keyed map.
func Index(checks []Check) map[Rule]bool {
	m := make(map[Rule]bool, len(checks))
	for _, c := range checks {
		m[c.Rule] = c.Passed
	}
	return m
}

func allPassed(checks []Check) bool {
	for _, c := range checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	}) >= 0
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return '0' <= r && r <= '9' }) >= 0
}

func hasSpecial(s string) bool {
	return strings.ContainsAny(s, SpecialCharacters)
}
