package credentials

import "github.com/aptidude/aptidude/internal/models"

// Feedback is what the form shows while the user types.
type Feedback struct {
	// UsernameChecks is nil unless the username checklist is displayed.
	UsernameChecks []Check
	// PasswordChecks is nil unless the password checklist is displayed.
	PasswordChecks []Check
	SubmitEnabled  bool
}

// LiveFeedback decides which checklists are visible and whether submit is
// enabled. Checklists only appear on signup once the field has input; login
// submit is always enabled and relies on Validate.
func LiveFeedback(mode models.Mode, in Input) Feedback {
	if mode != models.ModeSignup {
		return Feedback{SubmitEnabled: true}
	}

	var fb Feedback
	if in.Username != "" {
		fb.UsernameChecks = UsernameChecks(in.Username)
	}
	if in.Password != "" {
		fb.PasswordChecks = PasswordChecks(in.Password)
	}
	fb.SubmitEnabled = IsUsernameValid(in.Username) && IsPasswordValid(in.Password)
	return fb
}
