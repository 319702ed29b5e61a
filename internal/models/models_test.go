package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetExam(t *testing.T) {
	for _, e := range TargetExams() {
		got, err := ParseTargetExam(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
		assert.NotEmpty(t, got.Label())
		assert.NotEmpty(t, got.Description())
	}

	for _, bad := range []string{"", "gre", "MBA", "GENERAL "} {
		_, err := ParseTargetExam(bad)
		require.ErrorIs(t, err, ErrUnknownExam, bad)
	}
}

func TestTargetExam_ZeroValueIsInvalid(t *testing.T) {
	var e TargetExam
	assert.False(t, e.IsValid())

	_, err := e.MarshalText()
	require.ErrorIs(t, err, ErrUnknownExam)
}

func TestTargetExams_PickerOrder(t *testing.T) {
	var codes []string
	for _, e := range TargetExams() {
		codes = append(codes, e.String())
	}
	assert.Equal(t, []string{"CAT", "GRE", "GMAT", "BANK", "SSC", "GATE", "GENERAL"}, codes)
	assert.Equal(t, "Bank Exams", ExamBank.Label())
}

func TestSettings_JSONUsesExamCode(t *testing.T) {
	b, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"notificationsEnabled": true,
		"soundEnabled": true,
		"offlineMode": false,
		"darkMode": false,
		"dailyGoalXp": 10,
		"targetExam": "GENERAL"
	}`, string(b))

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(`{"targetExam":"GATE"}`), &s))
	assert.Equal(t, ExamGATE, s.TargetExam)

	require.Error(t, json.Unmarshal([]byte(`{"targetExam":"MBA"}`), &s))
}

func TestClampDailyGoal(t *testing.T) {
	tests := map[int]int{
		-40: 5,
		0:   5,
		5:   5,
		7:   5,
		8:   10,
		10:  10,
		23:  25,
		95:  95,
		100: 100,
		105: 100,
		999: 100,
	}
	for in, want := range tests {
		assert.Equal(t, want, ClampDailyGoal(in), "ClampDailyGoal(%d)", in)
	}
}

func TestProgress_CompleteIsIdempotent(t *testing.T) {
	p := Progress{TopicID: "percentages"}

	assert.True(t, p.Complete("1"))
	assert.True(t, p.Complete("2"))
	assert.False(t, p.Complete("1"))
	assert.Equal(t, []string{"1", "2"}, p.CompletedLevels)
	assert.True(t, p.Has("2"))
	assert.False(t, p.Has("3"))
}

func TestProgress_Dedup(t *testing.T) {
	p := Progress{CompletedLevels: []string{"a", "b", "a", "c", "b"}}
	p.Dedup()
	assert.Equal(t, []string{"a", "b", "c"}, p.CompletedLevels)
}

func TestUser_JSONShape(t *testing.T) {
	id := uuid.MustParse("6f1c2a52-3c4b-4f65-9d0e-3d7f4b0e2a11")
	u := User{ID: id, Username: "jane", Email: "jane@example.com", CreatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "6f1c2a52-3c4b-4f65-9d0e-3d7f4b0e2a11",
		"username": "jane",
		"email": "jane@example.com",
		"createdAt": "2024-05-01T09:30:00Z"
	}`, string(b))
}
