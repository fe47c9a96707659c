// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ileskov/personahub/internal/service"
	"github.com/ileskov/personahub/internal/store"
	"github.com/ileskov/personahub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfile_AnonymousRequest(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profile.EXPECT().
		GetProfile(gomock.Any(), models.ProfileRequest{Level: "professional"}).
		Return(models.ProfileResponse{Owner: "alice", Level: "professional", Count: 1,
			Entries: []models.DataEntry{{Title: "About me"}}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile?level=professional", nil)
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Owner)
	assert.Equal(t, 1, resp.Count)
}

func TestProfile_UsernameSegment(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profile.EXPECT().
		GetProfile(gomock.Any(), models.ProfileRequest{Owner: "bob"}).
		Return(models.ProfileResponse{Owner: "bob"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/bob", nil)
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfile_BearerTokenCarriesIdentity(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "token123").Return(stubToken(7, true), nil)
	mocks.profile.EXPECT().
		GetProfile(gomock.Any(), models.ProfileRequest{Owner: "bob", RequesterID: 7, IsAdmin: true}).
		Return(models.ProfileResponse{Owner: "bob"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/bob", nil)
	req.Header.Set("Authorization", "Bearer token123")
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfile_InvalidTokenRejected(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "bad").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer bad")
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_UnknownOwner(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profile.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Return(models.ProfileResponse{}, service.ErrOwnerNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/ghost", nil)
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAIProfile_ForcesAISafe(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profile.EXPECT().
		GetProfile(gomock.Any(), models.ProfileRequest{Owner: "alice", Level: "professional", AISafe: true}).
		Return(models.ProfileResponse{Owner: "alice", Level: "professional+ai_safe"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ai/profile/alice?level=professional", nil)
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "professional+ai_safe", resp.Level)
}

func TestProfileEntry_DirectReference(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profile.EXPECT().
		GetProfileEntry(gomock.Any(), models.ProfileRequest{Owner: "alice"}, int64(10)).
		Return(models.DataEntry{Title: "Unlisted note"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/alice/entries/10", nil)
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entry models.DataEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "Unlisted note", entry.Title)
	assert.Zero(t, entry.ID)
}

// The ownerless direct route serves single-user deployments, where no
// username segment exists to address the sole owner.
func TestProfileEntry_OwnerlessDirectReference(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profile.EXPECT().
		GetProfileEntry(gomock.Any(), models.ProfileRequest{}, int64(10)).
		Return(models.DataEntry{Title: "Unlisted note"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/entries/10", nil)
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entry models.DataEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "Unlisted note", entry.Title)
}

func TestProfileEntry_HiddenLooksAbsent(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profile.EXPECT().
		GetProfileEntry(gomock.Any(), gomock.Any(), int64(10)).
		Return(models.DataEntry{}, store.ErrEntryNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/alice/entries/10", nil)
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileEntry_MalformedID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/alice/entries/not-a-number", nil)
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
