package models

import (
	"time"

	"github.com/google/uuid"
)

// Mode selects between the two ways of entering the app.
type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

// User is the single local account. It is replaced wholesale on the next
// signup or login.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
