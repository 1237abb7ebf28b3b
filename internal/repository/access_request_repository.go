package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/superengulfing/site-backend/internal/model"
)

var ErrDuplicateAccessRequest = errors.New("pending access request for this email already exists")

// AccessRequestRepository handles access request data access.
type AccessRequestRepository struct {
	pool *pgxpool.Pool
}

// NewAccessRequestRepository creates a new AccessRequestRepository.
func NewAccessRequestRepository(pool *pgxpool.Pool) *AccessRequestRepository {
	return &AccessRequestRepository{pool: pool}
}

// Create inserts a new pending access request. A partial unique index
// on (email) WHERE status = 'pending' rejects duplicates.
func (r *AccessRequestRepository) Create(ctx context.Context, a *model.AccessRequest) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO access_requests (email, message, locale, status)
		 VALUES ($1, $2, $3, 'pending')
		 RETURNING id, created_at`,
		a.Email, a.Message, a.Locale,
	).Scan(&a.ID, &a.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateAccessRequest
		}
		return err
	}
	a.Status = model.AccessPending
	return nil
}

// GetByID retrieves an access request by ID.
func (r *AccessRequestRepository) GetByID(ctx context.Context, id int) (*model.AccessRequest, error) {
	a := &model.AccessRequest{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, message, locale, status, created_at, resolved_at
		 FROM access_requests WHERE id = $1`, id,
	).Scan(&a.ID, &a.Email, &a.Message, &a.Locale, &a.Status, &a.CreatedAt, &a.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListPaginated retrieves access requests with an optional status filter.
func (r *AccessRequestRepository) ListPaginated(ctx context.Context, status *model.AccessRequestStatus, limit, offset int) ([]model.AccessRequest, int, error) {
	countQuery := `SELECT COUNT(*) FROM access_requests`
	var countArgs []interface{}
	if status != nil {
		countQuery += ` WHERE status = $1`
		countArgs = append(countArgs, *status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, email, message, locale, status, created_at, resolved_at FROM access_requests`
	var args []interface{}
	argIdx := 1

	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
		argIdx++
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []model.AccessRequest
	for rows.Next() {
		var a model.AccessRequest
		if err := rows.Scan(&a.ID, &a.Email, &a.Message, &a.Locale, &a.Status, &a.CreatedAt, &a.ResolvedAt); err != nil {
			return nil, 0, err
		}
		requests = append(requests, a)
	}
	return requests, total, rows.Err()
}

// Resolve transitions a pending request to approved or rejected.
// Returns false when the request was not pending (already resolved).
func (r *AccessRequestRepository) Resolve(ctx context.Context, id int, status model.AccessRequestStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE access_requests SET status = $1, resolved_at = CURRENT_TIMESTAMP
		 WHERE id = $2 AND status = 'pending'`,
		status, id,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
