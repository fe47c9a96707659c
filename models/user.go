package models

import "time"

// User represents an account entity used for authentication, authorization
// and entry ownership. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique public handle of the user. In multi-user mode
	// it appears as the owner segment of profile URLs.
	Username string `json:"username"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in responses.
	Name string `json:"name"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash stores the argon2id-derived credential.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// IsAdmin marks operator accounts. Admins can edit global privacy rules
	// and pass the visibility gate for any entry; field redaction still
	// applies to them on public read paths.
	IsAdmin bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
