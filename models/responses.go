package models

// ProfileResponse is the payload returned by every filtered read path.
// Entries have already passed the privacy engine; internal identifiers are
// stripped on public paths before serialization.
type ProfileResponse struct {
	// Owner is the username the view is scoped to, empty for the aggregate
	// public view in multi-user mode.
	Owner string `json:"owner,omitempty"`

	// Level is the canonical privacy level the response was rendered at,
	// with an "+ai_safe" suffix when the sanitizer ran.
	Level string `json:"level"`

	// Entries is the filtered result list. Entries dropped by the
	// visibility gate or the AI opt-out are absent, not emptied.
	Entries []DataEntry `json:"entries"`

	// Count is len(Entries), provided so clients can validate the response
	// without iterating the slice.
	Count int `json:"count"`
}
