// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/ileskov/personahub/internal/config"
	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/utils"
	"github.com/ileskov/personahub/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns
// [ErrUnauthorized] (wrapped) on bad credentials.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

// CreateEntry implements [ServerAdapter]. It POSTs the entry to
// POST /api/entries/ and returns the stored entry from the response body.
// Requires a valid bearer token.
func (h *httpServerAdapter) CreateEntry(ctx context.Context, entry models.DataEntry) (models.DataEntry, error) {
	var saved models.DataEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		SetResult(&saved).
		Post("/api/entries/")
	if err != nil {
		return models.DataEntry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DataEntry{}, err
	}

	return saved, nil
}

// ListOwnEntries implements [ServerAdapter]. It GETs the owner management
// listing GET /api/entries/, repeating the visibility query parameter for each
// requested marker. Requires a valid bearer token.
func (h *httpServerAdapter) ListOwnEntries(ctx context.Context, req models.EntryListRequest) ([]models.DataEntry, error) {
	r := h.authedRequest(ctx)
	if len(req.Visibilities) > 0 {
		values := url.Values{}
		for _, v := range req.Visibilities {
			values.Add("visibility", string(v))
		}
		r.SetQueryParamsFromValues(values)
	}

	resp, err := r.Get("/api/entries/")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.DataEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode entries response: %w", err)
	}

	return entries, nil
}

// GetProfile implements [ServerAdapter]. It GETs the filtered profile view,
// routing through /api/ai/profile when req.AISafe is set and appending the
// username path segment when req.Owner is non-empty. The level query parameter
// carries req.Level when present. A stored bearer token is attached but not
// required.
func (h *httpServerAdapter) GetProfile(ctx context.Context, req models.ProfileRequest) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	r := h.authedRequest(ctx).SetResult(&profile)
	if req.Level != "" {
		r.SetQueryParam("level", req.Level)
	}

	resp, err := r.Get(profilePath(req))
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

// GetProfileEntry implements [ServerAdapter]. It GETs one filtered entry from
// GET /api/profile/{username}/entries/{entryID}, or from the ownerless
// GET /api/profile/entries/{entryID} when req.Owner is empty (the single-user
// direct-reference form).
func (h *httpServerAdapter) GetProfileEntry(ctx context.Context, req models.ProfileRequest, entryID int64) (models.DataEntry, error) {
	path := fmt.Sprintf("/api/profile/entries/%d", entryID)
	if req.Owner != "" {
		path = fmt.Sprintf("/api/profile/%s/entries/%d", url.PathEscape(req.Owner), entryID)
	}

	var entry models.DataEntry

	r := h.authedRequest(ctx).SetResult(&entry)
	if req.Level != "" {
		r.SetQueryParam("level", req.Level)
	}

	resp, err := r.Get(path)
	if err != nil {
		return models.DataEntry{}, fmt.Errorf("get profile entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DataEntry{}, err
	}

	return entry, nil
}

// GetSettings implements [ServerAdapter]. It GETs the caller's privacy
// settings from GET /api/settings. Requires a valid bearer token.
func (h *httpServerAdapter) GetSettings(ctx context.Context) (models.UserPrivacySettings, error) {
	var settings models.UserPrivacySettings

	resp, err := h.authedRequest(ctx).
		SetResult(&settings).
		Get("/api/settings")
	if err != nil {
		return models.UserPrivacySettings{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPrivacySettings{}, err
	}

	return settings, nil
}

// SaveSettings implements [ServerAdapter]. It PUTs the settings to
// PUT /api/settings and returns the stored value. Requires a valid bearer
// token.
func (h *httpServerAdapter) SaveSettings(ctx context.Context, settings models.UserPrivacySettings) (models.UserPrivacySettings, error) {
	var saved models.UserPrivacySettings

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(settings).
		SetResult(&saved).
		Put("/api/settings")
	if err != nil {
		return models.UserPrivacySettings{}, fmt.Errorf("save settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPrivacySettings{}, err
	}

	return saved, nil
}

func profilePath(req models.ProfileRequest) string {
	base := "/api/profile"
	if req.AISafe {
		base = "/api/ai/profile"
	}
	if req.Owner == "" {
		return base
	}
	return base + "/" + url.PathEscape(req.Owner)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
