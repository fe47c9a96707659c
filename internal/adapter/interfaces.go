// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

// Package adapter provides transport-layer abstractions for communicating with
// the personahub server.
//
// The primary abstraction is [ServerAdapter], which decouples the client from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ileskov/personahub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the personahub
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the bearer token extracted from
	// the Authorization response header via SetToken and returns it. Returns
	// an error if the request fails or the server responds with a non-2xx
	// status.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates the user with the server. On success it stores the
	// bearer token extracted from the Authorization response header via
	// SetToken and returns it. Returns [ErrUnauthorized] (wrapped) on bad
	// credentials.
	Login(ctx context.Context, user models.User) (string, error)

	// CreateEntry uploads a new profile entry. Requires a valid bearer token.
	// Returns the stored entry as the server echoed it back.
	CreateEntry(ctx context.Context, entry models.DataEntry) (models.DataEntry, error)

	// ListOwnEntries fetches the caller's unredacted entries, optionally
	// limited to the visibility markers in req.Visibilities. Requires a valid
	// bearer token.
	ListOwnEntries(ctx context.Context, req models.EntryListRequest) ([]models.DataEntry, error)

	// GetProfile fetches a filtered profile view. req.Owner selects the
	// username path segment (empty for the implicit or aggregate view),
	// req.Level the requested privacy level, and req.AISafe routes the call
	// through the AI-safe endpoint. A stored bearer token is attached when
	// present but is not required.
	GetProfile(ctx context.Context, req models.ProfileRequest) (models.ProfileResponse, error)

	// GetProfileEntry fetches one filtered entry by direct reference. An
	// empty req.Owner uses the ownerless single-user route. Returns
	// [ErrNotFound] (wrapped) when the entry does not exist or is hidden from
	// the requester.
	GetProfileEntry(ctx context.Context, req models.ProfileRequest, entryID int64) (models.DataEntry, error)

	// GetSettings fetches the caller's privacy settings. Requires a valid
	// bearer token.
	GetSettings(ctx context.Context) (models.UserPrivacySettings, error)

	// SaveSettings replaces the caller's privacy settings. Requires a valid
	// bearer token. Returns the settings as the server stored them.
	SaveSettings(ctx context.Context, settings models.UserPrivacySettings) (models.UserPrivacySettings, error)
}
