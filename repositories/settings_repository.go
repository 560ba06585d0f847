package repositories

import (
	"context"
	"time"

	"naoh-aquatics/config"
	"naoh-aquatics/models"
)

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	query := `SELECT id, site_name, COALESCE(tagline, ''), COALESCE(logo_url, ''), updated_at
	          FROM site_settings ORDER BY id LIMIT 1`

	var s models.SiteSettings
	err := config.DB.QueryRow(ctx, query).Scan(&s.ID, &s.SiteName, &s.Tagline, &s.LogoURL, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) UpdateSettings(ctx context.Context, s *models.SiteSettings) error {
	query := `UPDATE site_settings SET site_name = $1, tagline = $2, logo_url = $3, updated_at = $4
	          WHERE id = $5 RETURNING updated_at`
	return config.DB.QueryRow(ctx, query,
		s.SiteName, s.Tagline, s.LogoURL, time.Now(), s.ID,
	).Scan(&s.UpdatedAt)
}
