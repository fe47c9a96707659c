package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CustomRuleHide is the per-owner rule value that removes a field at every
// requested level. Any other value is interpreted as a minimum level token.
const CustomRuleHide = "hide"

// CustomRules maps a dotted field path to an explicit per-owner override:
// either CustomRuleHide or a named privacy level. Overrides take precedence
// over the global rule set for that owner only.
type CustomRules map[string]string

// Value implements driver.Valuer for storing CustomRules as JSONB.
func (c CustomRules) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for reading a JSONB column back into CustomRules.
func (c *CustomRules) Scan(src any) error {
	if src == nil {
		*c = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into CustomRules", src)
	}
}

// UserPrivacySettings holds the owner's self-service privacy knobs.
// One row per user; mutable only by the owner or an admin.
//
// The four Show* toggles short-circuit their field groups regardless of the
// requested level (deny overrides allow). BusinessCardMode forces the most
// restrictive level for every requester. AIAssistantAccess, when false,
// makes AI-safe reads of this user's entries return nothing at all.
type UserPrivacySettings struct {
	UserID int64 `json:"-"`

	ShowContactInfo    bool `json:"show_contact_info"`
	ShowLocation       bool `json:"show_location"`
	ShowCurrentCompany bool `json:"show_current_company"`
	ShowSalaryRange    bool `json:"show_salary_range"`

	BusinessCardMode  bool `json:"business_card_mode"`
	AIAssistantAccess bool `json:"ai_assistant_access"`

	CustomPrivacyRules CustomRules `json:"custom_privacy_rules,omitempty"`

	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the UserPrivacySettings model.
func (s UserPrivacySettings) TableName() string {
	return "user_privacy_settings"
}

// NewUserPrivacySettings returns the permissive defaults applied when a user
// account is created: all field groups shown, AI access allowed, no custom
// rules.
func NewUserPrivacySettings(userID int64) UserPrivacySettings {
	return UserPrivacySettings{
		UserID:             userID,
		ShowContactInfo:    true,
		ShowLocation:       true,
		ShowCurrentCompany: true,
		ShowSalaryRange:    true,
		BusinessCardMode:   false,
		AIAssistantAccess:  true,
	}
}

// ConservativeUserPrivacySettings returns the fail-closed fallback used when
// a settings row is unexpectedly absent for a user: contact, location,
// company and salary groups hidden, AI access denied. Permissive defaults
// must never be assumed on missing data.
func ConservativeUserPrivacySettings(userID int64) UserPrivacySettings {
	return UserPrivacySettings{
		UserID:            userID,
		BusinessCardMode:  true,
		AIAssistantAccess: false,
	}
}

// DataPrivacyRule is one global default: a dotted field path and the minimum
// privacy level required to reveal it. Seeded at system initialization and
// editable by admins. Per-owner custom rules override these.
type DataPrivacyRule struct {
	RuleID int64 `json:"rule_id,omitempty"`

	// FieldPath is the dotted path the rule applies to, e.g. "contact.phone".
	FieldPath string `json:"field_path"`

	// MinLevel is the level token required to reveal the field
	// (business_card, professional, public_full).
	MinLevel string `json:"min_level"`

	// IsActive disables a rule without deleting it. Inactive rules are
	// ignored when computing the effective minimum level.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the DataPrivacyRule model.
func (r DataPrivacyRule) TableName() string {
	return "data_privacy_rules"
}

// RequestContext is the ephemeral per-request identity and intent snapshot
// consumed by the privacy engine. It is constructed by the transport/service
// layers and never persisted.
type RequestContext struct {
	// RequesterID is the authenticated user, or 0 for anonymous requests.
	RequesterID int64

	// IsAdmin is true when the requester carries the admin claim.
	IsAdmin bool

	// RequestedLevel is the raw, caller-supplied level token. The engine
	// normalizes it; anything unrecognized degrades to business_card.
	RequestedLevel string

	// AISafe forces the AI-safe modifier independently of RequestedLevel.
	// Set by the AI-tool read path.
	AISafe bool

	// TargetOwnerID scopes the read to one owner, or 0 for the aggregate
	// public view across all users.
	TargetOwnerID int64

	// DirectReference is true when the read addressed a single entry by
	// reference rather than enumerating a listing. Unlisted entries are
	// reachable this way only.
	DirectReference bool
}

// Anonymous reports whether the request carries no authenticated identity.
func (c RequestContext) Anonymous() bool {
	return c.RequesterID == 0
}
