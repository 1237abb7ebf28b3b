package model

import (
	"time"

	"github.com/superengulfing/site-backend/internal/locale"
)

// AccessRequestStatus tracks the moderation state of an access request.
type AccessRequestStatus string

const (
	AccessPending  AccessRequestStatus = "pending"
	AccessApproved AccessRequestStatus = "approved"
	AccessRejected AccessRequestStatus = "rejected"
)

// AccessRequest is a visitor's request to join the gated course.
type AccessRequest struct {
	ID         int                 `json:"id"`
	Email      string              `json:"email"`
	Message    string              `json:"message"`
	Locale     locale.Locale       `json:"locale"`
	Status     AccessRequestStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	ResolvedAt *time.Time          `json:"resolved_at,omitempty"`
}

// CreateAccessRequest is the public form payload.
type CreateAccessRequest struct {
	Email   string        `json:"email" binding:"required,email"`
	Message string        `json:"message" binding:"max=2000"`
	Locale  locale.Locale `json:"locale" binding:"required,oneof=en am"`
}

// AccessRequestEvent is published on Redis when a new request arrives,
// consumed by the admin event stream.
type AccessRequestEvent struct {
	ID        int           `json:"id"`
	Email     string        `json:"email"`
	Locale    locale.Locale `json:"locale"`
	CreatedAt time.Time     `json:"created_at"`
}
