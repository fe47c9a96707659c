package models

// EntryListRequest represents search criteria for querying entries.
// Filtering happens on unredacted columns only; the privacy engine remains
// the sole authority on what leaves the system.
type EntryListRequest struct {
	// OwnerID limits the result to one owner. Zero means all owners
	// (the aggregate feed; the visibility gate still applies downstream).
	OwnerID int64 `json:"owner_id,omitempty"`

	// Visibilities limits the result to the given markers. Used by the
	// owner's management view; read paths leave it empty and let the
	// privacy engine decide.
	Visibilities []Visibility `json:"visibilities,omitempty"`

	// Limit caps the number of returned entries. Zero means no cap.
	Limit uint64 `json:"limit,omitempty"`
}

// ProfileRequest describes one filtered profile read. It is built by the
// transport layer from the URL, query parameters, and the requester's token,
// and resolved against the current deployment mode on every request.
type ProfileRequest struct {
	// Owner is the username segment of the request. Empty means the
	// implicit sole owner in single-user mode, or the aggregate public
	// view in multi-user mode.
	Owner string

	// RequesterID is the authenticated requester, zero for anonymous reads.
	RequesterID int64

	// IsAdmin marks an operator token. Admins bypass the visibility gate
	// but still receive redacted fields on data they do not own.
	IsAdmin bool

	// Level is the raw requested privacy level token. Unknown values
	// degrade to business_card.
	Level string

	// AISafe marks reads on behalf of an AI assistant; it forces the
	// sanitizer stage and honors the owner's AI opt-out.
	AISafe bool
}
