package privacy

import (
	"regexp"

	"github.com/ileskov/personahub/models"
)

// SanitizeRule pairs a named category with a compiled pattern. Each match is
// replaced with "[redacted-<category>]", preserving the surrounding text.
// Rules are applied in order; deployments can register additional categories
// without touching the orchestrator.
type SanitizeRule struct {
	Category string
	Pattern  *regexp.Regexp
}

// DefaultSanitizeRules returns the built-in sensitive-substring categories:
// national ID numbers, phone numbers, street addresses, monetary
// compensation figures and email addresses. National IDs run before phone
// numbers so the narrower 3-2-4 digit shape is not half-eaten by the phone
// pattern.
func DefaultSanitizeRules() []SanitizeRule {
	return []SanitizeRule{
		{
			Category: "national-id",
			Pattern:  regexp.MustCompile(`\b\d{3}[-\s]\d{2}[-\s]\d{4}\b`),
		},
		{
			Category: "phone",
			Pattern:  regexp.MustCompile(`(?:\(\d{3}\)\s*\d{3}[-.\s]?\d{4}|\+\d{1,3}[-.\s]?\d{2,3}[-.\s]?\d{3}[-.\s]?\d{2,4}|\b\d{3}[-.]\d{3}[-.]\d{4}\b|\b\d{3}[-.]\d{4}\b)`),
		},
		{
			Category: "address",
			Pattern:  regexp.MustCompile(`\b\d{1,6}\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Street|St|Avenue|Ave|Boulevard|Blvd|Drive|Dr|Road|Rd|Lane|Ln|Court|Ct|Way|Place|Pl|Circle|Cir)\b`),
		},
		{
			Category: "salary",
			Pattern:  regexp.MustCompile(`(?i)(?:[$€£]\s?\d[\d,]*(?:\.\d+)?\s*[km]?|\b\d[\d,]*(?:\.\d+)?\s*(?:usd|eur|gbp)\b)(?:\s*(?:per|/)\s*(?:year|yr|month|mo|annum|hour|hr))?`),
		},
		{
			Category: "email",
			Pattern:  regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
		},
	}
}

// Sanitizer masks sensitive substrings inside free text. It is stateless and
// independent of field names: free-form content can embed sensitive data the
// field-redaction stage cannot see, and this stage is the engine's last line
// of defense against it. It runs only when the effective level carries the
// AI-safe modifier.
type Sanitizer struct {
	rules []SanitizeRule
}

// NewSanitizer builds a sanitizer from the given ordered rule list.
// With no rules it falls back to [DefaultSanitizeRules].
func NewSanitizer(rules ...SanitizeRule) *Sanitizer {
	if len(rules) == 0 {
		rules = DefaultSanitizeRules()
	}
	return &Sanitizer{rules: rules}
}

// SanitizeText replaces every match of every rule with its category
// placeholder and returns the result. The input is never modified.
func (s *Sanitizer) SanitizeText(text string) string {
	for _, rule := range s.rules {
		text = rule.Pattern.ReplaceAllString(text, "[redacted-"+rule.Category+"]")
	}
	return text
}

// SanitizeFields deep-copies a field map, sanitizing every string value.
// Non-string leaves pass through unchanged.
func (s *Sanitizer) SanitizeFields(fields models.FieldMap) models.FieldMap {
	if fields == nil {
		return nil
	}

	out := make(models.FieldMap, len(fields))
	for key, value := range fields {
		switch v := value.(type) {
		case string:
			out[key] = s.SanitizeText(v)
		case map[string]any:
			out[key] = map[string]any(s.SanitizeFields(v))
		case models.FieldMap:
			out[key] = map[string]any(s.SanitizeFields(v))
		default:
			out[key] = value
		}
	}

	return out
}
