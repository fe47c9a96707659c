package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/store"
	"github.com/ileskov/personahub/models"
)

// settingsService is the concrete implementation of SettingsService.
type settingsService struct {
	settingsRepository store.SettingsRepository
	logger             *logger.Logger
}

// NewSettingsService constructs a SettingsService backed by the given
// repository.
func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

// GetSettings returns the user's privacy settings. A user who has never
// saved settings gets the conservative default set: everything hidden,
// business-card mode on, AI access off. Any other storage failure is
// returned as an error so callers fail closed instead of guessing.
func (s *settingsService) GetSettings(ctx context.Context, userID int64) (models.UserPrivacySettings, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return models.UserPrivacySettings{}, ErrInvalidDataProvided
	}

	settings, err := s.settingsRepository.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrSettingsNotFound) {
			return models.ConservativeUserPrivacySettings(userID), nil
		}

		log.Err(err).Int64("userID", userID).Msg("privacy settings lookup failed")
		return models.UserPrivacySettings{}, fmt.Errorf("privacy settings lookup failed: %w", err)
	}

	return settings, nil
}

// SaveSettings upserts the user's privacy settings. Custom rule values are
// stored as provided: the filter treats any token it cannot parse as "hide",
// so a typo narrows exposure rather than widening it.
func (s *settingsService) SaveSettings(ctx context.Context, settings models.UserPrivacySettings) (models.UserPrivacySettings, error) {
	log := logger.FromContext(ctx)

	if settings.UserID == 0 {
		return models.UserPrivacySettings{}, ErrInvalidDataProvided
	}

	for path := range settings.CustomPrivacyRules {
		if path == "" {
			return models.UserPrivacySettings{}, ErrInvalidDataProvided
		}
	}

	saved, err := s.settingsRepository.SaveSettings(ctx, settings)
	if err != nil {
		log.Err(err).Int64("userID", settings.UserID).Msg("privacy settings save failed")
		return models.UserPrivacySettings{}, fmt.Errorf("privacy settings save failed: %w", err)
	}

	return saved, nil
}
