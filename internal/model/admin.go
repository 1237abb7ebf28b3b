package model

import "time"

// Admin is a back-office operator. The login secret is shared between
// co-administrators, so admins are looked up by matching the submitted
// secret against each stored hash rather than by username.
type Admin struct {
	ID            int       `json:"id"`
	Email         string    `json:"email"`
	SecretHash    string    `json:"-"`
	TOTPSecret    string    `json:"-"`
	TOTPConfirmed bool      `json:"totp_confirmed"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminPasswordRequest is step 1 of the two-factor gate.
type AdminPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// AdminPasswordResponse moves the client to the code step. OtpauthURL
// is present only when TOTP enrollment has not been completed yet, so
// the client can show the provisioning QR.
type AdminPasswordResponse struct {
	PendingID     string `json:"pending_id"`
	EmailMasked   string `json:"email_masked"`
	SetupRequired bool   `json:"setup_required"`
	OtpauthURL    string `json:"otpauth_url,omitempty"`
}

// AdminCodeRequest is step 2 of the two-factor gate.
type AdminCodeRequest struct {
	PendingID        string `json:"pending_id" binding:"required,uuid"`
	Code             string `json:"code" binding:"required,len=6,numeric"`
	RememberMe       bool   `json:"remember_me"`
	RememberDuration string `json:"remember_duration" binding:"omitempty,oneof=1h 3h 12h 1d 2d 1w"`
}

// AdminCodeResponse carries the issued credential. OtpauthURL echoes
// the provisioning URI when enrollment happened in this flow, so the
// same QR can be shown once more for a second co-administrator.
type AdminCodeResponse struct {
	Token      string `json:"token"`
	OtpauthURL string `json:"otpauth_url,omitempty"`
}
