package privacy

import "strings"

// Level is the caller-requested fidelity tier, modeled as a closed enum with
// an explicit total order. The AI-safe modifier is deliberately not a point
// on this ordering — see [Resolved].
type Level int

const (
	// LevelBusinessCard is the most restrictive tier: name-card fidelity.
	// All fail-safe paths degrade to it.
	LevelBusinessCard Level = iota

	// LevelProfessional reveals work-profile fields on top of business card.
	LevelProfessional

	// LevelPublicFull is the most revealing tier the owner can expose.
	LevelPublicFull
)

// Level tokens accepted on the wire (case-insensitive).
const (
	tokenBusinessCard = "business_card"
	tokenProfessional = "professional"
	tokenPublicFull   = "public_full"
	tokenAISafe       = "ai_safe"
)

// String returns the canonical wire token for the level.
func (l Level) String() string {
	switch l {
	case LevelProfessional:
		return tokenProfessional
	case LevelPublicFull:
		return tokenPublicFull
	default:
		return tokenBusinessCard
	}
}

// Rank returns the position of the level in the total order
// business_card < professional < public_full. A field is revealed iff the
// requested rank is at least the field's effective minimum rank.
func (l Level) Rank() int {
	return int(l)
}

// Resolved is the normalized form of a requested privacy level: a base tier
// plus the orthogonal AI-safe modifier. The modifier never changes the base
// rank; it only triggers the sanitizer stage and the owner's AI opt-out.
type Resolved struct {
	Base   Level
	AISafe bool
}

// Token returns the canonical representation of the resolved level,
// suffixed with "+ai_safe" when the modifier is set.
func (r Resolved) Token() string {
	if r.AISafe {
		return r.Base.String() + "+" + tokenAISafe
	}
	return r.Base.String()
}

// ParseLevel normalizes a free-text requested level. Unknown, malformed or
// missing input resolves to business_card; "ai_safe" requested alone pairs
// with business_card. ParseLevel never fails — malformed input degrades to
// maximum restriction rather than failing the request.
func ParseLevel(s string) Resolved {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case tokenProfessional:
		return Resolved{Base: LevelProfessional}
	case tokenPublicFull:
		return Resolved{Base: LevelPublicFull}
	case tokenAISafe:
		return Resolved{Base: LevelBusinessCard, AISafe: true}
	default:
		return Resolved{Base: LevelBusinessCard}
	}
}

// parseMinLevel interprets a rule's minimum-level token. The second return
// is false when the token is CustomRuleHide or unrecognized, in which case
// the field must be hidden at every level (fail-closed: a rule whose intent
// cannot be read never widens exposure).
func parseMinLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case tokenBusinessCard:
		return LevelBusinessCard, true
	case tokenProfessional:
		return LevelProfessional, true
	case tokenPublicFull:
		return LevelPublicFull, true
	default:
		return LevelBusinessCard, false
	}
}
