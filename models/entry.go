package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Visibility is the owner-set, per-entry marker controlling whether an entry
// is considered at all on a read path. It is independent of the requested
// privacy level, which only shapes the fields of entries that survive.
type Visibility string

const (
	// VisibilityPublic entries are enumerable and readable by anyone.
	VisibilityPublic Visibility = "public"

	// VisibilityUnlisted entries are excluded from anonymous listings but
	// remain reachable by direct entry reference.
	VisibilityUnlisted Visibility = "unlisted"

	// VisibilityPrivate entries are readable by their owner and admins only.
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility normalizes a raw visibility token. Unknown or empty input
// degrades to VisibilityPrivate rather than failing.
func ParseVisibility(s string) Visibility {
	switch Visibility(strings.ToLower(strings.TrimSpace(s))) {
	case VisibilityPublic:
		return VisibilityPublic
	case VisibilityUnlisted:
		return VisibilityUnlisted
	case VisibilityPrivate:
		return VisibilityPrivate
	default:
		return VisibilityPrivate
	}
}

// FieldMap is the structured key→value view derived from an entry's content
// (e.g. contact.email, salary.range). Values are either strings or nested
// FieldMap-shaped maps. The privacy engine is the only reader that
// interprets it; the database stores it as a JSON document.
type FieldMap map[string]any

// Value implements driver.Valuer so a FieldMap can be bound directly as a
// JSONB query argument. A nil map is stored as SQL NULL.
func (f FieldMap) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for reading a JSONB column back into a FieldMap.
func (f *FieldMap) Scan(src any) error {
	if src == nil {
		*f = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into FieldMap", src)
	}
}

// DataEntry is one stored unit of profile content (resume section, skill
// list, idea, etc.). OwnerID is immutable after creation. The privacy engine
// never mutates a stored entry; it only transforms copies in transit.
type DataEntry struct {
	// ID is the internal identifier. It is serialized only on the owner's
	// management view; public read paths strip it.
	ID int64 `json:"id,omitempty"`

	// OwnerID identifies the owning user. Never serialized.
	OwnerID int64 `json:"-"`

	// Title is a short human-readable label for the entry.
	Title string `json:"title"`

	// Content is the free-form text body. May embed sensitive substrings
	// outside the structured field map, which is why the AI-safe read path
	// additionally sanitizes it.
	Content string `json:"content"`

	// Visibility is the owner-set entry marker. Defaults to public at write
	// time; unrecognized stored values are treated as private on read.
	Visibility Visibility `json:"visibility"`

	// Fields is the structured view used by the field-redaction stage.
	// Entries without structured fields skip that stage.
	Fields FieldMap `json:"fields,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the DataEntry model.
func (e DataEntry) TableName() string {
	return "entries"
}

// EntryUpdate represents a partial update of a single entry.
// Only non-nil fields are written (partial update support).
type EntryUpdate struct {
	// ID is the unique identifier of the entry to update. Required.
	ID int64 `json:"id"`

	// OwnerID is the owner of the entry. Required for data isolation.
	OwnerID int64 `json:"-"`

	Title      *string     `json:"title,omitempty"`
	Content    *string     `json:"content,omitempty"`
	Visibility *Visibility `json:"visibility,omitempty"`
	Fields     *FieldMap   `json:"fields,omitempty"`
}
