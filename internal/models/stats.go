package models

// UserStats are accumulated by practice activity and only go down on a full
// data reset.
type UserStats struct {
	XP     int `json:"xp"`
	Streak int `json:"streak"`

	// LastActiveDate is the calendar day (YYYY-MM-DD) of the most recent
	// completion, empty before any activity.
	LastActiveDate string `json:"lastActiveDate,omitempty"`
}
