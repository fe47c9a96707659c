package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/ileskov/personahub/models"
)

// AuthService handles user registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntryService is the owner-facing management surface for profile entries.
// All reads here return raw, unfiltered data and are therefore strictly
// limited to the authenticated owner.
type EntryService interface {
	CreateEntry(ctx context.Context, entry models.DataEntry) (models.DataEntry, error)
	GetOwnEntry(ctx context.Context, ownerID, entryID int64) (models.DataEntry, error)
	ListOwnEntries(ctx context.Context, req models.EntryListRequest) ([]models.DataEntry, error)
	UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.DataEntry, error)
	DeleteEntry(ctx context.Context, ownerID, entryID int64) error
}

// SettingsService manages per-user privacy settings.
type SettingsService interface {
	// GetSettings returns the owner's settings, falling back to the
	// conservative default set when the owner has never saved any.
	GetSettings(ctx context.Context, userID int64) (models.UserPrivacySettings, error)
	SaveSettings(ctx context.Context, settings models.UserPrivacySettings) (models.UserPrivacySettings, error)
}

// RuleService is the operator surface for the global field-path rules.
type RuleService interface {
	ListRules(ctx context.Context) ([]models.DataPrivacyRule, error)
	CreateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error)
	UpdateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error)
}

// ProfileService is the filtered read path. Every response it produces has
// passed the privacy engine; no raw entry ever leaves through it.
type ProfileService interface {
	// GetProfile renders the profile view the request is entitled to see.
	GetProfile(ctx context.Context, req models.ProfileRequest) (models.ProfileResponse, error)

	// GetProfileEntry renders a single entry referenced directly by ID.
	// Unlisted entries are reachable here; entries the requester may not
	// see surface as not-found, indistinguishable from absence.
	GetProfileEntry(ctx context.Context, req models.ProfileRequest, entryID int64) (models.DataEntry, error)
}
