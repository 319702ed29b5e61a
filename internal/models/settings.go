package models

const (
	MinDailyGoal     = 5
	MaxDailyGoal     = 100
	DailyGoalStep    = 5
	DefaultDailyGoal = 10
)

// Settings is the effective value of every preference.
type Settings struct {
	NotificationsEnabled bool       `json:"notificationsEnabled"`
	SoundEnabled         bool       `json:"soundEnabled"`
	OfflineMode          bool       `json:"offlineMode"`
	DarkMode             bool       `json:"darkMode"`
	DailyGoalXP          int        `json:"dailyGoalXp"`
	TargetExam           TargetExam `json:"targetExam"`
}

func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		SoundEnabled:         true,
		OfflineMode:          false,
		DarkMode:             false,
		DailyGoalXP:          DefaultDailyGoal,
		TargetExam:           ExamGeneral,
	}
}

// ClampDailyGoal snaps v to the nearest multiple of DailyGoalStep inside
// [MinDailyGoal, MaxDailyGoal].
func ClampDailyGoal(v int) int {
	v = max(MinDailyGoal, min(MaxDailyGoal, v))
	return (v + DailyGoalStep/2) / DailyGoalStep * DailyGoalStep
}
