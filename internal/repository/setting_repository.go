package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/model"
)

type SettingRepository struct {
	pool *pgxpool.Pool
}

func NewSettingRepository(pool *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

// GetAllForLocale retrieves every setting row for one locale.
func (r *SettingRepository) GetAllForLocale(ctx context.Context, l locale.Locale) ([]model.SiteSetting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT key, locale, value, updated_at FROM site_settings WHERE locale = $1 ORDER BY key ASC`, l)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []model.SiteSetting
	for rows.Next() {
		var s model.SiteSetting
		if err := rows.Scan(&s.Key, &s.Locale, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Upsert writes a single locale-scoped setting.
func (r *SettingRepository) Upsert(ctx context.Context, key string, l locale.Locale, value string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO site_settings (key, locale, value, updated_at) VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (key, locale) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, l, value)
	return err
}

// GetByKey retrieves one setting for a locale.
func (r *SettingRepository) GetByKey(ctx context.Context, key string, l locale.Locale) (*model.SiteSetting, error) {
	s := &model.SiteSetting{}
	err := r.pool.QueryRow(ctx,
		`SELECT key, locale, value, updated_at FROM site_settings WHERE key = $1 AND locale = $2`, key, l).
		Scan(&s.Key, &s.Locale, &s.Value, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
