package service

import (
	"context"

	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/repository"
)

// UserService wraps member account operations.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// UpdateLocale switches the user's content language; the site's locale
// reconciliation follows this field, not the URL.
func (s *UserService) UpdateLocale(ctx context.Context, id int, l locale.Locale) error {
	return s.userRepo.UpdateLocale(ctx, id, l)
}

// MarkOnboardingCompleted records completion of the onboarding flow.
func (s *UserService) MarkOnboardingCompleted(ctx context.Context, id int) error {
	return s.userRepo.MarkOnboardingCompleted(ctx, id)
}

// SetPassword stores a new password hash for the user.
func (s *UserService) SetPassword(ctx context.Context, id int, passwordHash string) error {
	return s.userRepo.UpdatePassword(ctx, id, passwordHash)
}
