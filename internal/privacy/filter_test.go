package privacy

import (
	"reflect"
	"testing"

	"github.com/ileskov/personahub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerID = int64(1)

func contactEntry() models.DataEntry {
	return models.DataEntry{
		ID:         42,
		OwnerID:    ownerID,
		Title:      "About me",
		Content:    "Backend engineer.",
		Visibility: models.VisibilityPublic,
		Fields: models.FieldMap{
			"contact": map[string]any{
				"email": "a@b.com",
				"phone": "555-0100",
			},
		},
	}
}

// fieldPaths flattens a filtered field map into its dotted path set.
func fieldPaths(fields models.FieldMap) map[string]bool {
	paths := map[string]bool{}
	var walk func(m map[string]any, prefix string)
	walk = func(m map[string]any, prefix string) {
		for k, v := range m {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			if nested, ok := v.(map[string]any); ok {
				walk(nested, path)
				continue
			}
			paths[path] = true
		}
	}
	walk(fields, "")
	return paths
}

func subset(small, big map[string]bool) bool {
	for p := range small {
		if !big[p] {
			return false
		}
	}
	return true
}

func anonCtx(level string) models.RequestContext {
	return models.RequestContext{RequestedLevel: level, TargetOwnerID: ownerID}
}

// Scenario A: default settings, level business_card — phone (professional
// minimum) is omitted, email (business_card minimum) is kept.
func TestFilterEntries_ScenarioA(t *testing.T) {
	engine := NewEngine()

	out := engine.FilterEntries(
		[]models.DataEntry{contactEntry()},
		permissiveSettings(),
		defaultGlobalRules(),
		anonCtx("business_card"),
	)

	require.Len(t, out, 1)

	paths := fieldPaths(out[0].Fields)
	assert.True(t, paths[FieldContactEmail], "email stays at business_card")
	assert.False(t, paths[FieldContactPhone], "phone requires professional")
}

// Scenario B: permissive level but show_contact_info=false — contact.*
// fully absent except the designated public channel.
func TestFilterEntries_ScenarioB(t *testing.T) {
	engine := NewEngine()
	settings := permissiveSettings()
	settings.ShowContactInfo = false

	out := engine.FilterEntries(
		[]models.DataEntry{contactEntry()},
		settings,
		defaultGlobalRules(),
		anonCtx("professional"),
	)

	require.Len(t, out, 1)

	paths := fieldPaths(out[0].Fields)
	assert.False(t, paths[FieldContactPhone])
	assert.True(t, paths[PublicContactChannel], "designated public channel survives the toggle")
}

// A flat "salary" key must fall under the salary toggle just like
// "salary.range" does.
func TestFilterEntries_ToggleCoversFlatFieldKeys(t *testing.T) {
	engine := NewEngine()
	settings := permissiveSettings()
	settings.ShowSalaryRange = false

	entry := contactEntry()
	entry.Fields = models.FieldMap{
		"salary":       "$150,000",
		"salary.range": "140-160k",
	}

	out := engine.FilterEntries(
		[]models.DataEntry{entry},
		settings,
		defaultGlobalRules(),
		anonCtx("business_card"),
	)

	require.Len(t, out, 1)
	assert.NotContains(t, out[0].Fields, "salary")
	assert.NotContains(t, out[0].Fields, "salary.range")
}

// Scenario C: private entry, anonymous requester — absent from the result
// list entirely at every level, not present with empty fields.
func TestFilterEntries_ScenarioC(t *testing.T) {
	engine := NewEngine()

	entry := contactEntry()
	entry.Visibility = models.VisibilityPrivate

	for _, level := range []string{"business_card", "professional", "public_full", "ai_safe"} {
		out := engine.FilterEntries(
			[]models.DataEntry{entry},
			permissiveSettings(),
			defaultGlobalRules(),
			anonCtx(level),
		)
		assert.Empty(t, out, "level %s", level)
	}
}

func TestFilterEntries_Monotonicity(t *testing.T) {
	engine := NewEngine()

	entry := contactEntry()
	entry.Fields["location"] = map[string]any{"city": "Berlin"}
	entry.Fields["salary"] = map[string]any{"range": "100-120"}
	entry.Fields["skills"] = map[string]any{"go": "expert"}

	var sets []map[string]bool
	for _, level := range []string{"business_card", "professional", "public_full"} {
		out := engine.FilterEntries(
			[]models.DataEntry{entry},
			permissiveSettings(),
			defaultGlobalRules(),
			anonCtx(level),
		)
		require.Len(t, out, 1)
		sets = append(sets, fieldPaths(out[0].Fields))
	}

	assert.True(t, subset(sets[0], sets[1]), "business_card ⊄ professional")
	assert.True(t, subset(sets[1], sets[2]), "professional ⊄ public_full")
}

func TestFilterEntries_Idempotence(t *testing.T) {
	engine := NewEngine()
	entries := []models.DataEntry{contactEntry()}
	settings := permissiveSettings()
	rules := defaultGlobalRules()
	ctx := anonCtx("ai_safe")

	first := engine.FilterEntries(entries, settings, rules, ctx)
	second := engine.FilterEntries(entries, settings, rules, ctx)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("filter is not idempotent:\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestFilterEntries_AIOptOut(t *testing.T) {
	engine := NewEngine()
	settings := permissiveSettings()
	settings.AIAssistantAccess = false

	// Zero entries, not a sanitized version.
	out := engine.FilterEntries(
		[]models.DataEntry{contactEntry()},
		settings,
		defaultGlobalRules(),
		anonCtx("ai_safe"),
	)
	assert.Empty(t, out)

	// The owner reading their own data is exempt from the opt-out.
	ownCtx := models.RequestContext{RequesterID: ownerID, RequestedLevel: "ai_safe", TargetOwnerID: ownerID}
	out = engine.FilterEntries([]models.DataEntry{contactEntry()}, settings, defaultGlobalRules(), ownCtx)
	assert.Len(t, out, 1)
}

func TestFilterEntries_SanitizerCoverage(t *testing.T) {
	engine := NewEngine()

	entry := contactEntry()
	entry.Content = "Call 555-123-4567, I make $120,000 per year."

	out := engine.FilterEntries(
		[]models.DataEntry{entry},
		permissiveSettings(),
		defaultGlobalRules(),
		anonCtx("ai_safe"),
	)

	require.Len(t, out, 1)
	assert.NotContains(t, out[0].Content, "555-123-4567")
	assert.NotContains(t, out[0].Content, "$120,000")
	assert.Contains(t, out[0].Content, "[redacted-phone]")
	assert.Contains(t, out[0].Content, "[redacted-salary]")
}

// Without the AI-safe modifier the sanitizer must not run: content passes
// through verbatim.
func TestFilterEntries_NoSanitizerWithoutModifier(t *testing.T) {
	engine := NewEngine()

	entry := contactEntry()
	entry.Content = "Call 555-123-4567."

	out := engine.FilterEntries(
		[]models.DataEntry{entry},
		permissiveSettings(),
		defaultGlobalRules(),
		anonCtx("public_full"),
	)

	require.Len(t, out, 1)
	assert.Equal(t, entry.Content, out[0].Content)
}

func TestFilterEntries_BusinessCardModeForcesBase(t *testing.T) {
	engine := NewEngine()
	settings := permissiveSettings()
	settings.BusinessCardMode = true

	out := engine.FilterEntries(
		[]models.DataEntry{contactEntry()},
		settings,
		defaultGlobalRules(),
		anonCtx("public_full"),
	)

	require.Len(t, out, 1)
	paths := fieldPaths(out[0].Fields)
	assert.False(t, paths[FieldContactPhone], "business card mode pins the base level down")
}

func TestFilterEntries_StripsInternalID(t *testing.T) {
	engine := NewEngine()

	out := engine.FilterEntries(
		[]models.DataEntry{contactEntry()},
		permissiveSettings(),
		defaultGlobalRules(),
		anonCtx("public_full"),
	)

	require.Len(t, out, 1)
	assert.Zero(t, out[0].ID, "internal identifiers never leave the filter")
	assert.Zero(t, out[0].OwnerID)
}

func TestFilterEntries_DoesNotMutateStoredEntries(t *testing.T) {
	engine := NewEngine()

	entry := contactEntry()
	entry.Content = "Call 555-123-4567."

	_ = engine.FilterEntries(
		[]models.DataEntry{entry},
		permissiveSettings(),
		defaultGlobalRules(),
		anonCtx("ai_safe"),
	)

	assert.Contains(t, entry.Content, "555-123-4567")
	assert.Contains(t, entry.Fields["contact"].(map[string]any), "phone")
}

// Admin bypass is visibility-only: a private entry of another user is
// visible to an admin, but its fields still go through redaction.
func TestFilterEntries_AdminSeesExistenceNotEverything(t *testing.T) {
	engine := NewEngine()

	entry := contactEntry()
	entry.Visibility = models.VisibilityPrivate

	ctx := models.RequestContext{RequesterID: 99, IsAdmin: true, RequestedLevel: "business_card", TargetOwnerID: ownerID}
	out := engine.FilterEntries([]models.DataEntry{entry}, permissiveSettings(), defaultGlobalRules(), ctx)

	require.Len(t, out, 1, "admin passes the gate")
	paths := fieldPaths(out[0].Fields)
	assert.False(t, paths[FieldContactPhone], "field redaction still applies to admins")
}

func TestResolveLevel(t *testing.T) {
	engine := NewEngine()

	settings := permissiveSettings()
	lvl := engine.ResolveLevel(settings, models.RequestContext{RequestedLevel: "professional", AISafe: true})
	assert.Equal(t, Resolved{Base: LevelProfessional, AISafe: true}, lvl)

	settings.BusinessCardMode = true
	lvl = engine.ResolveLevel(settings, models.RequestContext{RequestedLevel: "public_full"})
	assert.Equal(t, Resolved{Base: LevelBusinessCard}, lvl)
}
