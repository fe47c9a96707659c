package privacy

import (
	"strings"

	"github.com/ileskov/personahub/models"
)

// Well-known dotted field paths. The field map itself is schema-optional;
// paths outside this list fall into the catch-all and are still governed by
// the rule set (defaulting to a business_card minimum).
const (
	FieldContactEmail   = "contact.email"
	FieldContactPhone   = "contact.phone"
	FieldContactAddress = "contact.address"
	FieldLocationCity   = "location.city"
	FieldLocationRegion = "location.region"
	FieldCompanyName    = "company.name"
	FieldCompanyTitle   = "company.title"
	FieldSalaryRange    = "salary.range"
	FieldSalaryAmount   = "salary.amount"
)

// PublicContactChannel is the single contact field that survives
// show_contact_info=false, so an owner who hides contact details still has
// one reachable channel.
const PublicContactChannel = FieldContactEmail

// Field-group prefixes gated by the owner's boolean toggles.
const (
	groupContact  = "contact."
	groupLocation = "location."
	groupCompany  = "company."
	groupSalary   = "salary."
)

// RuleSet merges the global privacy rules with one owner's settings into a
// per-request decision table for dotted field paths. It is built once per
// filter call from immutable snapshots and holds no shared state.
type RuleSet struct {
	settings models.UserPrivacySettings
	global   map[string]string
}

// NewRuleSet indexes the active global rules and pairs them with the
// owner's settings. Inactive rules are dropped here so lookups never have
// to re-check the flag.
func NewRuleSet(settings models.UserPrivacySettings, rules []models.DataPrivacyRule) *RuleSet {
	global := make(map[string]string, len(rules))
	for _, rule := range rules {
		if !rule.IsActive || rule.FieldPath == "" {
			continue
		}
		global[rule.FieldPath] = rule.MinLevel
	}

	return &RuleSet{
		settings: settings,
		global:   global,
	}
}

// Allowed reports whether the field at path may be revealed at the given
// base level.
//
// The owner's deny-toggles are checked first and always win over a
// permissive level. Then the effective minimum level is computed as:
// per-owner custom rule if present, else active global rule, else
// business_card for unknown fields. A custom "hide" (or any unreadable rule
// token) hides the field at every level.
func (rs *RuleSet) Allowed(path string, level Level) bool {
	if rs.toggledOff(path) {
		return false
	}

	if custom, ok := rs.settings.CustomPrivacyRules[path]; ok {
		min, ok := parseMinLevel(custom)
		if !ok {
			return false
		}
		return level.Rank() >= min.Rank()
	}

	if globalRule, ok := rs.global[path]; ok {
		min, ok := parseMinLevel(globalRule)
		if !ok {
			return false
		}
		return level.Rank() >= min.Rank()
	}

	// No custom or global rule: the catch-all minimum is business_card,
	// which every level satisfies, so unknown fields are revealed.
	return true
}

// toggledOff reports whether one of the four owner toggles short-circuits
// the field group the path belongs to. A group covers both the bare group
// name ("salary") and every dotted path under it ("salary.range"). The
// designated public contact channel is exempt from the contact toggle.
func (rs *RuleSet) toggledOff(path string) bool {
	switch {
	case inGroup(path, groupContact):
		return !rs.settings.ShowContactInfo && path != PublicContactChannel
	case inGroup(path, groupLocation):
		return !rs.settings.ShowLocation
	case inGroup(path, groupCompany):
		return !rs.settings.ShowCurrentCompany
	case inGroup(path, groupSalary):
		return !rs.settings.ShowSalaryRange
	default:
		return false
	}
}

func inGroup(path, group string) bool {
	return path == strings.TrimSuffix(group, ".") || strings.HasPrefix(path, group)
}

// Redact returns a deep copy of fields with every disallowed path removed.
// Removed keys are absent, not nulled, so serialization does not hint at
// their existence. Nested maps that end up empty are dropped entirely.
// The input map is never modified.
func (rs *RuleSet) Redact(fields models.FieldMap, level Level) models.FieldMap {
	if fields == nil {
		return nil
	}

	out := rs.redactMap(fields, "", level)
	if len(out) == 0 {
		return nil
	}
	return out
}

func (rs *RuleSet) redactMap(in map[string]any, prefix string, level Level) models.FieldMap {
	out := make(models.FieldMap, len(in))

	for key, value := range in {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch nested := value.(type) {
		case map[string]any:
			child := rs.redactMap(nested, path, level)
			if len(child) > 0 {
				out[key] = map[string]any(child)
			}
		case models.FieldMap:
			child := rs.redactMap(nested, path, level)
			if len(child) > 0 {
				out[key] = map[string]any(child)
			}
		default:
			if rs.Allowed(path, level) {
				out[key] = value
			}
		}
	}

	return out
}
