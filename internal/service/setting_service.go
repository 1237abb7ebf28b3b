package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/repository"
)

// SettingService manages locale-scoped site settings (affiliate link,
// PDF link, video embed URL).
type SettingService struct {
	settingRepo *repository.SettingRepository
	log         zerolog.Logger
}

func NewSettingService(settingRepo *repository.SettingRepository, log zerolog.Logger) *SettingService {
	return &SettingService{
		settingRepo: settingRepo,
		log:         log.With().Str("component", "setting_service").Logger(),
	}
}

// GetAllSettings returns all settings for one locale as a flat map.
func (s *SettingService) GetAllSettings(ctx context.Context, l locale.Locale) (map[string]string, error) {
	settingsList, err := s.settingRepo.GetAllForLocale(ctx, l)
	if err != nil {
		s.log.Error().Err(err).Str("locale", string(l)).Msg("failed to get settings")
		return nil, err
	}

	settingsMap := make(map[string]string)
	for _, setting := range settingsList {
		settingsMap[setting.Key] = setting.Value
	}
	return settingsMap, nil
}

// UpdateSettings bulk-upserts settings for one locale. Settings are
// low volume; iterative upserts are fine.
func (s *SettingService) UpdateSettings(ctx context.Context, l locale.Locale, settingsMap map[string]string) error {
	for key, value := range settingsMap {
		if err := s.settingRepo.Upsert(ctx, key, l, value); err != nil {
			s.log.Error().Err(err).Str("key", key).Str("locale", string(l)).Msg("failed to update setting")
			return err
		}
	}
	return nil
}

// GetSettingByKey returns one setting value for a locale.
func (s *SettingService) GetSettingByKey(ctx context.Context, key string, l locale.Locale) (string, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key, l)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}
