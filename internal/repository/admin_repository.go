package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/superengulfing/site-backend/internal/model"
)

// AdminRepository handles admin operator data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// List retrieves all admins. The table holds a handful of
// co-administrators at most; the secret check iterates over them.
func (r *AdminRepository) List(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, secret_hash, totp_secret, totp_confirmed, created_at
		 FROM admins ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.SecretHash, &a.TOTPSecret, &a.TOTPConfirmed, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, secret_hash, totp_secret, totp_confirmed, created_at
		 FROM admins WHERE id = $1`, id,
	).Scan(&a.ID, &a.Email, &a.SecretHash, &a.TOTPSecret, &a.TOTPConfirmed, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new admin operator.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO admins (email, secret_hash, totp_secret, totp_confirmed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.Email, a.SecretHash, a.TOTPSecret, a.TOTPConfirmed,
	).Scan(&a.ID, &a.CreatedAt)
}

// ConfirmTOTP marks TOTP enrollment as completed.
func (r *AdminRepository) ConfirmTOTP(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `UPDATE admins SET totp_confirmed = TRUE WHERE id = $1`, id)
	return err
}
