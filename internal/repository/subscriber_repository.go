package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/superengulfing/site-backend/internal/model"
)

var ErrDuplicateSubscriber = errors.New("email already subscribed")

// SubscriberRepository handles newsletter subscriber data access.
type SubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository creates a new SubscriberRepository.
func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

// Create inserts a new subscriber.
func (r *SubscriberRepository) Create(ctx context.Context, s *model.Subscriber) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO subscribers (email, locale, confirmed)
		 VALUES ($1, $2, FALSE)
		 RETURNING id, created_at`,
		s.Email, s.Locale,
	).Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSubscriber
		}
		return err
	}
	return nil
}

// Confirm marks a subscriber as confirmed.
func (r *SubscriberRepository) Confirm(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `UPDATE subscribers SET confirmed = TRUE WHERE id = $1`, id)
	return err
}

// GetByEmail retrieves a subscriber by email.
func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	s := &model.Subscriber{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, locale, confirmed, created_at FROM subscribers WHERE email = $1`, email,
	).Scan(&s.ID, &s.Email, &s.Locale, &s.Confirmed, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
