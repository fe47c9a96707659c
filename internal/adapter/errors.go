// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

package adapter

import "errors"

// Sentinel errors returned by mapHTTPError. Wrapped values carry the server's
// response body; match with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
