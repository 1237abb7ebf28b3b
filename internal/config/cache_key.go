package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key for a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("session:user:%d", userID)
}

// AdminPendingTwoFactorKey returns the cache key for a pending admin
// 2FA verification (between the secret step and the code step).
func (r *CacheKeyStruct) AdminPendingTwoFactorKey(pendingID string) string {
	return fmt.Sprintf("admin:2fa:pending:%s", pendingID)
}

// ConfirmTokenKey returns the cache key for a thank-you confirmation token.
func (r *CacheKeyStruct) ConfirmTokenKey(token string) string {
	return fmt.Sprintf("confirm:%s", token)
}

// SetPasswordTokenKey returns the cache key for an initial set-password token.
func (r *CacheKeyStruct) SetPasswordTokenKey(token string) string {
	return fmt.Sprintf("setpw:%s", token)
}

// AccessRequestChannel returns the Redis PubSub channel for access-request events.
func (r *CacheKeyStruct) AccessRequestChannel() string {
	return "access_requests:events"
}

var CacheKey = NewCacheKeyStruct()
