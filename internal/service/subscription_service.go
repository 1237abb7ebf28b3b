package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/mailer"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/repository"
)

// SubscriptionService handles landing-page email capture and the
// confirmation email flow.
type SubscriptionService struct {
	cfg            *config.Config
	rdb            *redis.Client
	subscriberRepo *repository.SubscriberRepository
	authService    *AuthService
	log            zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(cfg *config.Config, rdb *redis.Client, subscriberRepo *repository.SubscriberRepository, authService *AuthService, log zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{
		cfg:            cfg,
		rdb:            rdb,
		subscriberRepo: subscriberRepo,
		authService:    authService,
		log:            log.With().Str("component", "subscription_service").Logger(),
	}
}

// Subscribe stores the subscriber and queues a confirmation email
// whose link lands on the locale's thank-you page with a one-time
// token.
func (s *SubscriptionService) Subscribe(ctx context.Context, req *model.SubscribeRequest) error {
	sub := &model.Subscriber{Email: req.Email, Locale: req.Locale}
	if err := s.subscriberRepo.Create(ctx, sub); err != nil {
		return err
	}

	token, err := s.authService.CreateConfirmToken(ctx, sub.ID, 0, sub.Locale)
	if err != nil {
		return fmt.Errorf("create confirm token: %w", err)
	}

	confirmURL := s.cfg.SiteURL + locale.Localize("/thank-you", sub.Locale) + "?token=" + token
	if err := s.QueueEmail(ctx, &mailer.EmailJob{
		To:       sub.Email,
		Locale:   string(sub.Locale),
		Template: mailer.TemplateConfirmSubscription,
		Data:     map[string]string{"confirm_url": confirmURL},
	}); err != nil {
		return err
	}

	s.log.Info().Str("email", sub.Email).Str("locale", string(sub.Locale)).Msg("Subscriber created")
	return nil
}

// ConfirmSubscriber marks a subscriber as confirmed after a successful
// token exchange.
func (s *SubscriptionService) ConfirmSubscriber(ctx context.Context, subscriberID int) error {
	return s.subscriberRepo.Confirm(ctx, subscriberID)
}

// QueueEmail pushes a job onto the Redis send queue consumed by the
// email worker.
func (s *SubscriptionService) QueueEmail(ctx context.Context, job *mailer.EmailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.SendEmailQueue, payload).Err(); err != nil {
		return fmt.Errorf("queue email: %w", err)
	}
	return nil
}
