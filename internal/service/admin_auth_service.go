package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Admin two-factor errors.
var (
	ErrInvalidSecret   = errors.New("invalid secret password")
	ErrInvalidCode     = errors.New("invalid or expired code")
	ErrPendingNotFound = errors.New("pending verification not found")
)

// pendingTwoFactorTTL bounds how long the operator may sit on the code
// step before starting over from the password step.
const pendingTwoFactorTTL = 5 * time.Minute

// RememberDurations maps the remember-me choices to credential
// lifetimes. The chosen duration becomes the admin JWT expiry; no
// separate client-side expiry bookkeeping exists.
var RememberDurations = map[string]time.Duration{
	"1h":  time.Hour,
	"3h":  3 * time.Hour,
	"12h": 12 * time.Hour,
	"1d":  24 * time.Hour,
	"2d":  48 * time.Hour,
	"1w":  7 * 24 * time.Hour,
}

// pendingTwoFactor is the state parked in Redis between the two steps.
type pendingTwoFactor struct {
	AdminID       int  `json:"admin_id"`
	SetupRequired bool `json:"setup_required"`
}

// AdminAuthService implements the two-step admin gate: shared secret
// first, then a time-based code. The admin panel is reachable only
// through a credential issued by VerifyCode.
type AdminAuthService struct {
	cfg         *config.Config
	rdb         *redis.Client
	adminRepo   *repository.AdminRepository
	authService *AuthService
	log         zerolog.Logger
}

// NewAdminAuthService creates a new AdminAuthService.
func NewAdminAuthService(cfg *config.Config, rdb *redis.Client, adminRepo *repository.AdminRepository, authService *AuthService, log zerolog.Logger) *AdminAuthService {
	return &AdminAuthService{
		cfg:         cfg,
		rdb:         rdb,
		adminRepo:   adminRepo,
		authService: authService,
		log:         log.With().Str("component", "admin_auth_service").Logger(),
	}
}

// GetAdmin loads an admin profile by id.
func (s *AdminAuthService) GetAdmin(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// VerifySecret is step 1. The submitted secret is matched against every
// stored admin hash (the secret is shared, so there is no username to
// look up by). On a match it parks a pending verification and returns
// the masked identifier plus, for unenrolled admins, the otpauth
// provisioning URI to render as a QR.
func (s *AdminAuthService) VerifySecret(ctx context.Context, secret string) (*model.AdminPasswordResponse, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}

	var matched *model.Admin
	for i := range admins {
		if bcrypt.CompareHashAndPassword([]byte(admins[i].SecretHash), []byte(secret)) == nil {
			matched = &admins[i]
			break
		}
	}
	if matched == nil {
		return nil, ErrInvalidSecret
	}

	pendingID := uuid.New().String()
	payload, err := json.Marshal(pendingTwoFactor{
		AdminID:       matched.ID,
		SetupRequired: !matched.TOTPConfirmed,
	})
	if err != nil {
		return nil, err
	}
	key := config.CacheKey.AdminPendingTwoFactorKey(pendingID)
	if err := s.rdb.Set(ctx, key, payload, pendingTwoFactorTTL).Err(); err != nil {
		return nil, fmt.Errorf("store pending verification: %w", err)
	}

	resp := &model.AdminPasswordResponse{
		PendingID:     pendingID,
		EmailMasked:   MaskEmail(matched.Email),
		SetupRequired: !matched.TOTPConfirmed,
	}
	if !matched.TOTPConfirmed {
		resp.OtpauthURL = s.ProvisioningURL(matched.Email, matched.TOTPSecret)
	}

	s.log.Info().Int("admin_id", matched.ID).Bool("setup_required", resp.SetupRequired).
		Msg("Admin passed secret step")
	return resp, nil
}

// VerifyCode is step 2. A wrong code keeps the pending verification
// alive so the operator stays on the code step; only expiry of the
// pending state forces a restart from the password step.
func (s *AdminAuthService) VerifyCode(ctx context.Context, req *model.AdminCodeRequest) (*model.AdminCodeResponse, error) {
	key := config.CacheKey.AdminPendingTwoFactorKey(req.PendingID)
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPendingNotFound
		}
		return nil, fmt.Errorf("get pending verification: %w", err)
	}

	var pending pendingTwoFactor
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, ErrPendingNotFound
	}

	admin, err := s.adminRepo.GetByID(ctx, pending.AdminID)
	if err != nil {
		return nil, fmt.Errorf("load admin: %w", err)
	}

	if !totp.Validate(req.Code, admin.TOTPSecret) {
		return nil, ErrInvalidCode
	}

	if !admin.TOTPConfirmed {
		if err := s.adminRepo.ConfirmTOTP(ctx, admin.ID); err != nil {
			return nil, fmt.Errorf("confirm totp enrollment: %w", err)
		}
	}

	expiry := s.cfg.JWTExpiry
	if req.RememberMe {
		if d, ok := RememberDurations[req.RememberDuration]; ok {
			expiry = d
		}
	}

	token, err := s.authService.GenerateAdminToken(admin.ID, expiry)
	if err != nil {
		return nil, fmt.Errorf("issue admin token: %w", err)
	}

	// The pending state is single-use once the code verifies.
	s.rdb.Del(ctx, key)

	resp := &model.AdminCodeResponse{Token: token}
	if pending.SetupRequired {
		// Echo the provisioning URI so the QR can be shown once more
		// for a second co-administrator (shared secret, shared seed).
		resp.OtpauthURL = s.ProvisioningURL(admin.Email, admin.TOTPSecret)
	}

	s.log.Info().Int("admin_id", admin.ID).Bool("remembered", req.RememberMe).
		Dur("expiry", expiry).Msg("Admin two-factor verified")
	return resp, nil
}

// ProvisioningURL builds the otpauth URI for an existing TOTP seed.
func (s *AdminAuthService) ProvisioningURL(email, secret string) string {
	issuer := s.cfg.TOTPIssuer
	return fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s&algorithm=SHA1&digits=6&period=30",
		url.PathEscape(issuer), url.PathEscape(email), secret, url.QueryEscape(issuer))
}

// MaskEmail hides most of the local part for display on the code step.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return local[:1] + "***" + domain
	}
	return local[:2] + "***" + domain
}
