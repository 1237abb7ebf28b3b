package model

import (
	"time"

	"github.com/superengulfing/site-backend/internal/locale"
)

// User represents a course member.
type User struct {
	ID                  int           `json:"id"`
	Email               string        `json:"email"`
	PasswordHash        string        `json:"-"`
	Locale              locale.Locale `json:"locale"`
	OnboardingCompleted bool          `json:"onboarding_completed"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// LoginRequest is the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after a successful login or token exchange.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ConfirmRequest exchanges a one-time confirmation token for a session.
type ConfirmRequest struct {
	Token string `json:"token" binding:"required,min=16,max=128"`
}

// SetPasswordRequest sets the initial password after access approval.
type SetPasswordRequest struct {
	Token    string `json:"token" binding:"required,min=16,max=128"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// UpdateLocaleRequest switches the user's content language. The URL
// locale follows the profile for logged-in users, so the language
// toggle goes through this endpoint rather than the address bar.
type UpdateLocaleRequest struct {
	Locale locale.Locale `json:"locale" binding:"required,oneof=en am"`
}
