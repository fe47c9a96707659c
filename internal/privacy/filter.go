package privacy

import "github.com/ileskov/personahub/models"

// Engine is the privacy filter orchestrator. It composes the visibility
// gate, field redaction, and the sensitive-pattern sanitizer into one pure
// function applied uniformly across all read paths. Construct it once at
// startup; it is safe for arbitrary concurrent use because each call
// operates only on its arguments.
type Engine struct {
	sanitizer *Sanitizer
}

// NewEngine constructs an Engine. Deployments can extend the sanitizer by
// passing additional rules; with none, the built-in categories apply.
func NewEngine(rules ...SanitizeRule) *Engine {
	return &Engine{sanitizer: NewSanitizer(rules...)}
}

// FilterEntries is the sole entry point of the engine: callers never reach
// into sub-stages directly.
//
// For each candidate entry, in order: the visibility gate drops or keeps the
// entry; the requested level is normalized (forced down to business_card
// when the owner runs business-card mode); the AI opt-out drops the entry
// outright when the AI-safe modifier is in effect and the owner has
// disabled AI assistant access; field redaction strips disallowed paths;
// and on AI-safe reads the sanitizer masks sensitive substrings left in the
// content and surviving fields.
//
// The result is a new slice of transformed copies: stored entries are never
// mutated, internal identifiers are stripped, and for a fixed settings and
// rules snapshot the function is idempotent and monotonic across levels.
func (e *Engine) FilterEntries(
	entries []models.DataEntry,
	settings models.UserPrivacySettings,
	rules []models.DataPrivacyRule,
	ctx models.RequestContext,
) []models.DataEntry {
	ruleSet := NewRuleSet(settings, rules)
	level := e.resolveLevel(settings, ctx)

	out := make([]models.DataEntry, 0, len(entries))
	for _, entry := range entries {
		filtered, ok := e.filterEntry(entry, ruleSet, settings, level, ctx)
		if !ok {
			continue
		}
		out = append(out, filtered)
	}

	return out
}

// ResolveLevel exposes the normalized level a request would be rendered at,
// so transports can echo it in responses without re-deriving the rules.
func (e *Engine) ResolveLevel(settings models.UserPrivacySettings, ctx models.RequestContext) Resolved {
	return e.resolveLevel(settings, ctx)
}

func (e *Engine) resolveLevel(settings models.UserPrivacySettings, ctx models.RequestContext) Resolved {
	level := ParseLevel(ctx.RequestedLevel)
	if ctx.AISafe {
		level.AISafe = true
	}

	// Business-card mode forces the most restrictive base tier regardless
	// of what was requested. The AI-safe modifier survives: sanitization
	// must still run on AI reads.
	if settings.BusinessCardMode {
		level.Base = LevelBusinessCard
	}

	return level
}

func (e *Engine) filterEntry(
	entry models.DataEntry,
	ruleSet *RuleSet,
	settings models.UserPrivacySettings,
	level Resolved,
	ctx models.RequestContext,
) (models.DataEntry, bool) {
	if Gate(entry, ctx) == Excluded {
		return models.DataEntry{}, false
	}

	// An explicit AI opt-out always wins: the entry is dropped before the
	// sanitizer ever sees it, except for the owner reading their own data.
	if level.AISafe && !settings.AIAssistantAccess && ctx.RequesterID != entry.OwnerID {
		return models.DataEntry{}, false
	}

	filtered := models.DataEntry{
		Title:      entry.Title,
		Content:    entry.Content,
		Visibility: models.ParseVisibility(string(entry.Visibility)),
		Fields:     ruleSet.Redact(entry.Fields, level.Base),
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}

	if level.AISafe {
		filtered.Content = e.sanitizer.SanitizeText(filtered.Content)
		filtered.Fields = e.sanitizer.SanitizeFields(filtered.Fields)
	}

	return filtered, true
}
