package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/mailer"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/repository"
)

// ErrAlreadyResolved is returned when approving or rejecting a request
// that is no longer pending.
var ErrAlreadyResolved = errors.New("access request already resolved")

// AccessService handles the course access-request workflow.
type AccessService struct {
	cfg         *config.Config
	rdb         *redis.Client
	accessRepo  *repository.AccessRequestRepository
	userRepo    *repository.UserRepository
	authService *AuthService
	log         zerolog.Logger
}

// NewAccessService creates a new AccessService.
func NewAccessService(cfg *config.Config, rdb *redis.Client, accessRepo *repository.AccessRequestRepository, userRepo *repository.UserRepository, authService *AuthService, log zerolog.Logger) *AccessService {
	return &AccessService{
		cfg:         cfg,
		rdb:         rdb,
		accessRepo:  accessRepo,
		userRepo:    userRepo,
		authService: authService,
		log:         log.With().Str("component", "access_service").Logger(),
	}
}

// CreateRequest stores a new pending request and publishes an event
// for the admin stream.
func (s *AccessService) CreateRequest(ctx context.Context, req *model.CreateAccessRequest) (*model.AccessRequest, error) {
	a := &model.AccessRequest{Email: req.Email, Message: req.Message, Locale: req.Locale}
	if err := s.accessRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	event, err := json.Marshal(model.AccessRequestEvent{
		ID:        a.ID,
		Email:     a.Email,
		Locale:    a.Locale,
		CreatedAt: a.CreatedAt,
	})
	if err == nil {
		// Best effort; a dropped event only delays the admin noticing.
		if pubErr := s.rdb.Publish(ctx, config.CacheKey.AccessRequestChannel(), event).Err(); pubErr != nil {
			s.log.Warn().Err(pubErr).Int("request_id", a.ID).Msg("Publish access-request event failed")
		}
	}

	s.log.Info().Int("request_id", a.ID).Str("email", a.Email).Msg("Access request created")
	return a, nil
}

// List returns access requests for the admin panel.
func (s *AccessService) List(ctx context.Context, status *model.AccessRequestStatus, limit, offset int) ([]model.AccessRequest, int, error) {
	return s.accessRepo.ListPaginated(ctx, status, limit, offset)
}

// Approve resolves a pending request: the member account is created
// (or found), a set-password token is minted, and the approval email
// is queued with the locale-correct set-password link.
func (s *AccessService) Approve(ctx context.Context, id int) error {
	req, err := s.accessRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.accessRepo.Resolve(ctx, id, model.AccessApproved)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyResolved
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		user = &model.User{Email: req.Email, Locale: req.Locale}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("create member: %w", err)
		}
	} else if err != nil {
		return err
	}

	token, err := s.authService.CreateSetPasswordToken(ctx, user.ID)
	if err != nil {
		return err
	}

	setPasswordURL := s.cfg.SiteURL + locale.Localize("/set-password", req.Locale) + "?token=" + token
	if err := s.queueEmail(ctx, &mailer.EmailJob{
		To:       req.Email,
		Locale:   string(req.Locale),
		Template: mailer.TemplateAccessApproved,
		Data:     map[string]string{"set_password_url": setPasswordURL},
	}); err != nil {
		return err
	}

	s.log.Info().Int("request_id", id).Int("user_id", user.ID).Msg("Access request approved")
	return nil
}

// Reject resolves a pending request negatively and queues the
// rejection email.
func (s *AccessService) Reject(ctx context.Context, id int) error {
	req, err := s.accessRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.accessRepo.Resolve(ctx, id, model.AccessRejected)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyResolved
	}

	if err := s.queueEmail(ctx, &mailer.EmailJob{
		To:       req.Email,
		Locale:   string(req.Locale),
		Template: mailer.TemplateAccessRejected,
	}); err != nil {
		return err
	}

	s.log.Info().Int("request_id", id).Msg("Access request rejected")
	return nil
}

func (s *AccessService) queueEmail(ctx context.Context, job *mailer.EmailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, config.WorkerKey.SendEmailQueue, payload).Err()
}
