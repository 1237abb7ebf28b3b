package model

import (
	"time"

	"github.com/superengulfing/site-backend/internal/locale"
)

// Subscriber is an email captured by the landing-page form.
type Subscriber struct {
	ID        int           `json:"id"`
	Email     string        `json:"email"`
	Locale    locale.Locale `json:"locale"`
	Confirmed bool          `json:"confirmed"`
	CreatedAt time.Time     `json:"created_at"`
}

// SubscribeRequest is the landing-page subscription payload.
type SubscribeRequest struct {
	Email  string        `json:"email" binding:"required,email"`
	Locale locale.Locale `json:"locale" binding:"required,oneof=en am"`
}
