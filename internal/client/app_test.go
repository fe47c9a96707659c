// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/mock"
	"github.com/ileskov/personahub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	out := &bytes.Buffer{}

	app, err := NewApp(serverAdapter, out, logger.NewClientLogger("test"))
	require.NoError(t, err)

	serverAdapter.EXPECT().Token().Return("stored-token").AnyTimes()
	return app, serverAdapter, out
}

func TestNewApp_RequiresAdapter(t *testing.T) {
	_, err := NewApp(nil, &bytes.Buffer{}, logger.NewClientLogger("test"))

	require.Error(t, err)
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"frobnicate"})

	require.Error(t, err)
}

func TestRun_NoArguments(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), nil)

	require.Error(t, err)
}

func TestRun_TokenFromEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	out := &bytes.Buffer{}

	app, err := NewApp(serverAdapter, out, logger.NewClientLogger("test"))
	require.NoError(t, err)

	t.Setenv("PERSONAHUB_TOKEN", "env-token")

	serverAdapter.EXPECT().Token().Return("")
	serverAdapter.EXPECT().SetToken("env-token")
	serverAdapter.EXPECT().GetSettings(gomock.Any()).Return(models.UserPrivacySettings{}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"settings"}))
}

// ── register / login ────────────────────────────────────────────────────────

func TestRegisterCommand(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		Register(gomock.Any(), models.User{Username: "alice", Name: "Alice", Password: "secret"}).
		Return("issued-token", nil)

	err := app.Run(context.Background(), []string{"register", "-username", "alice", "-name", "Alice", "-password", "secret"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "issued-token")
}

func TestLoginCommand(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		Login(gomock.Any(), models.User{Username: "alice", Password: "secret"}).
		Return("issued-token", nil)

	err := app.Run(context.Background(), []string{"login", "-username", "alice", "-password", "secret"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "issued-token")
}

// ── profile reads ───────────────────────────────────────────────────────────

func TestProfileCommand_FlagsMapToRequest(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		GetProfile(gomock.Any(), models.ProfileRequest{Owner: "alice", Level: "professional", AISafe: true}).
		Return(models.ProfileResponse{Owner: "alice", Level: "professional+ai_safe", Count: 0}, nil)

	err := app.Run(context.Background(), []string{"profile", "-owner", "alice", "-level", "professional", "-ai"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "professional+ai_safe")
}

func TestEntryCommand(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		GetProfileEntry(gomock.Any(), models.ProfileRequest{Owner: "alice"}, int64(42)).
		Return(models.DataEntry{Title: "Work email"}, nil)

	err := app.Run(context.Background(), []string{"entry", "-owner", "alice", "-id", "42"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Work email")
}

// ── owner management ────────────────────────────────────────────────────────

func TestEntriesCommand_VisibilityList(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)

	serverAdapter.EXPECT().
		ListOwnEntries(gomock.Any(), models.EntryListRequest{
			Visibilities: []models.Visibility{models.VisibilityPrivate, models.VisibilityUnlisted},
		}).
		Return([]models.DataEntry{}, nil)

	err := app.Run(context.Background(), []string{"entries", "-visibility", "private,unlisted"})

	require.NoError(t, err)
}

func TestAddCommand(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		CreateEntry(gomock.Any(), models.DataEntry{Title: "Phone", Content: "+1 555 0100", Visibility: models.VisibilityPrivate}).
		Return(models.DataEntry{ID: 9, Title: "Phone"}, nil)

	err := app.Run(context.Background(), []string{"add", "-title", "Phone", "-content", "+1 555 0100", "-visibility", "private"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Phone")
}

// ── settings ────────────────────────────────────────────────────────────────

func TestSettingsCommand_GetOnly(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)

	serverAdapter.EXPECT().
		GetSettings(gomock.Any()).
		Return(models.UserPrivacySettings{ShowContactInfo: true}, nil)

	err := app.Run(context.Background(), []string{"settings"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "show_contact_info")
}

func TestSettingsCommand_TogglePersists(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)

	stored := models.UserPrivacySettings{ShowContactInfo: true, AIAssistantAccess: true}
	want := stored
	want.BusinessCardMode = true

	serverAdapter.EXPECT().GetSettings(gomock.Any()).Return(stored, nil)
	serverAdapter.EXPECT().SaveSettings(gomock.Any(), want).Return(want, nil)

	err := app.Run(context.Background(), []string{"settings", "-business-card"})

	require.NoError(t, err)
}
