package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/models"
	"github.com/jackc/pgerrcode"
)

// settingsRepository is the SQL-backed implementation of [SettingsRepository],
// persisting one privacy-settings row per user.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetSettings returns the stored privacy settings for userID, or
// [ErrSettingsNotFound] when the user has never saved any. Callers decide
// the fail-closed fallback; the repository never invents a row.
func (r *settingsRepository) GetSettings(ctx context.Context, userID int64) (models.UserPrivacySettings, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getSettings, userID)

	settings, err := scanSettings(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserPrivacySettings{}, ErrSettingsNotFound
		}

		log.Err(err).Str("func", "*settingsRepository.GetSettings").Msg("error getting privacy settings")
		return models.UserPrivacySettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}

// SaveSettings upserts the user's privacy settings and returns the stored
// row with the refreshed UpdatedAt timestamp.
func (r *settingsRepository) SaveSettings(ctx context.Context, settings models.UserPrivacySettings) (models.UserPrivacySettings, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveSettings,
		settings.UserID,
		settings.ShowContactInfo,
		settings.ShowLocation,
		settings.ShowCurrentCompany,
		settings.ShowSalaryRange,
		settings.BusinessCardMode,
		settings.AIAssistantAccess,
		settings.CustomPrivacyRules,
	)

	saved, err := scanSettings(row)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.SaveSettings").Msg("error saving privacy settings")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.UserPrivacySettings{}, ErrNoUserWasFound
		default:
			return models.UserPrivacySettings{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

func scanSettings(row *sql.Row) (models.UserPrivacySettings, error) {
	var settings models.UserPrivacySettings
	if err := row.Scan(
		&settings.UserID,
		&settings.ShowContactInfo,
		&settings.ShowLocation,
		&settings.ShowCurrentCompany,
		&settings.ShowSalaryRange,
		&settings.BusinessCardMode,
		&settings.AIAssistantAccess,
		&settings.CustomPrivacyRules,
		&settings.UpdatedAt,
	); err != nil {
		return models.UserPrivacySettings{}, err
	}

	return settings, nil
}
