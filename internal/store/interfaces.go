package store

import (
	"context"

	"github.com/ileskov/personahub/models"
)

// UserRepository persists user accounts and answers the identity lookups the
// mode resolver and auth flows depend on.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// CountUsers drives the single-user vs multi-user mode decision and is
	// re-evaluated on every read request.
	CountUsers(ctx context.Context) (int, error)

	// SoleUser returns the only user in the system. It is meaningful in
	// single-user mode only; with more than one user it returns an error.
	SoleUser(ctx context.Context) (models.User, error)
}

// EntryRepository persists profile entries. All reads return raw, unfiltered
// rows; callers pass them through the privacy engine before anything leaves
// the process.
type EntryRepository interface {
	SaveEntry(ctx context.Context, entry models.DataEntry) (models.DataEntry, error)
	GetEntry(ctx context.Context, entryID int64) (models.DataEntry, error)
	ListEntries(ctx context.Context, req models.EntryListRequest) ([]models.DataEntry, error)
	UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.DataEntry, error)
	DeleteEntry(ctx context.Context, ownerID, entryID int64) error
}

// SettingsRepository persists per-user privacy settings.
type SettingsRepository interface {
	// GetSettings returns the owner's settings row. ErrSettingsNotFound is
	// returned when no row exists; callers decide the fail-closed fallback.
	GetSettings(ctx context.Context, userID int64) (models.UserPrivacySettings, error)
	SaveSettings(ctx context.Context, settings models.UserPrivacySettings) (models.UserPrivacySettings, error)
}

// RuleRepository persists the global field-path privacy rules.
type RuleRepository interface {
	// ListActiveRules returns only rules with is_active=true — the snapshot
	// handed to the privacy engine.
	ListActiveRules(ctx context.Context) ([]models.DataPrivacyRule, error)

	// ListRules returns every rule, active or not, for the admin view.
	ListRules(ctx context.Context) ([]models.DataPrivacyRule, error)

	CreateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error)
	UpdateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error)
}

// ErrorClassificator maps low-level database errors to a retry decision.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
