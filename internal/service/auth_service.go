package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/locale"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNotFound      = errors.New("token not found or expired")
)

// TokenType distinguishes user vs admin tokens.
type TokenType string

const (
	TokenTypeUser  TokenType = "user"
	TokenTypeAdmin TokenType = "admin"
)

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	TokenType TokenType `json:"token_type"`
	UserID    int       `json:"user_id"`
}

// Token lifetimes for the one-time tokens minted by this service.
const (
	confirmTokenTTL     = 72 * time.Hour
	setPasswordTokenTTL = 7 * 24 * time.Hour
)

// confirmPayload is what a thank-you confirmation token resolves to.
// SubscriberID and UserID are both optional; a subscriber confirmation
// carries no session, an approved-member confirmation does.
type confirmPayload struct {
	SubscriberID int           `json:"subscriber_id,omitempty"`
	UserID       int           `json:"user_id,omitempty"`
	Locale       locale.Locale `json:"locale"`
}

// AuthService handles authentication, JWT, sessions, and one-time tokens.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateUserToken creates a JWT for a user and registers the session
// in Redis. A fresh login replaces any previous session for the user.
func (s *AuthService) GenerateUserToken(ctx context.Context, userID int) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		TokenType: TokenTypeUser,
		UserID:    userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	sessionKey := config.CacheKey.UserSessionKey(userID)
	if err := s.rdb.Set(ctx, sessionKey, jti, s.cfg.JWTExpiry).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return signed, nil
}

// GenerateAdminToken creates a JWT for an admin. The expiry is the
// remembered duration chosen during two-factor verification; the
// issued credential is the only thing that governs admin validity.
func (s *AuthService) GenerateAdminToken(adminID int, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		TokenType: TokenTypeAdmin,
		UserID:    adminID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ValidateUserSession checks that the token's JTI matches the active
// session in Redis (logout invalidates it).
func (s *AuthService) ValidateUserSession(ctx context.Context, userID int, jti string) error {
	stored, err := s.rdb.Get(ctx, config.CacheKey.UserSessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return errors.New("no active session")
		}
		return fmt.Errorf("check session: %w", err)
	}
	if stored != jti {
		return errors.New("session invalidated")
	}
	return nil
}

// Logout removes a user's session from Redis.
func (s *AuthService) Logout(ctx context.Context, userID int) error {
	return s.rdb.Del(ctx, config.CacheKey.UserSessionKey(userID)).Err()
}

// CreateConfirmToken mints a one-time thank-you confirmation token for
// a subscriber, an approved member, or both.
func (s *AuthService) CreateConfirmToken(ctx context.Context, subscriberID, userID int, l locale.Locale) (string, error) {
	token := uuid.New().String()
	payload, err := json.Marshal(confirmPayload{SubscriberID: subscriberID, UserID: userID, Locale: l})
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, config.CacheKey.ConfirmTokenKey(token), payload, confirmTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store confirm token: %w", err)
	}
	return token, nil
}

// ConfirmResult is the outcome of a successful token exchange.
type ConfirmResult struct {
	Locale       locale.Locale
	SubscriberID int
	// UserID and Token are set when the confirmation also opens a
	// session (access-approval confirmations).
	UserID int
	Token  string
}

// ExchangeConfirmToken resolves and consumes a confirmation token.
// Missing or expired tokens return ErrTokenNotFound; the caller
// redirects to the locale landing page.
func (s *AuthService) ExchangeConfirmToken(ctx context.Context, token string) (*ConfirmResult, error) {
	key := config.CacheKey.ConfirmTokenKey(token)
	raw, err := s.rdb.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("get confirm token: %w", err)
	}

	var payload confirmPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, ErrTokenNotFound
	}
	if !locale.Valid(payload.Locale) {
		return nil, ErrTokenNotFound
	}

	result := &ConfirmResult{
		Locale:       payload.Locale,
		SubscriberID: payload.SubscriberID,
		UserID:       payload.UserID,
	}
	if payload.UserID > 0 {
		sessionToken, err := s.GenerateUserToken(ctx, payload.UserID)
		if err != nil {
			return nil, err
		}
		result.Token = sessionToken
	}
	return result, nil
}

// CreateSetPasswordToken mints a one-time set-password token for a
// freshly approved member.
func (s *AuthService) CreateSetPasswordToken(ctx context.Context, userID int) (string, error) {
	token := uuid.New().String()
	key := config.CacheKey.SetPasswordTokenKey(token)
	if err := s.rdb.Set(ctx, key, strconv.Itoa(userID), setPasswordTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store set-password token: %w", err)
	}
	return token, nil
}

// ConsumeSetPasswordToken resolves and deletes a set-password token,
// returning the user it belongs to.
func (s *AuthService) ConsumeSetPasswordToken(ctx context.Context, token string) (int, error) {
	raw, err := s.rdb.GetDel(ctx, config.CacheKey.SetPasswordTokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrTokenNotFound
		}
		return 0, fmt.Errorf("get set-password token: %w", err)
	}
	userID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrTokenNotFound
	}
	return userID, nil
}
