// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ileskov/personahub/internal/adapter"
	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/models"
)

// tokenEnv names the environment variable a previously issued bearer token is
// read from for authenticated subcommands.
const tokenEnv = "PERSONAHUB_TOKEN"

// App dispatches one CLI subcommand against the personahub server through a
// [adapter.ServerAdapter].
type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	logger *logger.Logger
}

// NewApp constructs the client application. Output (tokens, JSON payloads)
// is written to out.
func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, log *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, fmt.Errorf("server adapter is required")
	}
	if out == nil {
		out = os.Stdout
	}

	return &App{adapter: serverAdapter, out: out, logger: log}, nil
}

// Run implements [Client]. args[0] selects the subcommand; the rest are
// parsed as that subcommand's flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage()
	}

	if a.adapter.Token() == "" {
		a.adapter.SetToken(os.Getenv(tokenEnv))
	}

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "profile":
		return a.profile(ctx, args[1:])
	case "entry":
		return a.profileEntry(ctx, args[1:])
	case "entries":
		return a.listEntries(ctx, args[1:])
	case "add":
		return a.addEntry(ctx, args[1:])
	case "settings":
		return a.settings(ctx, args[1:])
	default:
		return a.usage()
	}
}

func (a *App) usage() error {
	fmt.Fprintln(a.out, "usage: personahub-client <register|login|profile|entry|entries|add|settings> [flags]")
	return fmt.Errorf("unknown or missing subcommand")
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	name := fs.String("name", "", "display name")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.adapter.Register(ctx, models.User{Username: *username, Name: *name, Password: *password})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.logger.Info().Str("username", *username).Msg("registered")
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, models.User{Username: *username, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("username", *username).Msg("logged in")
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	owner := fs.String("owner", "", "profile owner username (empty for the default view)")
	level := fs.String("level", "", "requested privacy level")
	aiSafe := fs.Bool("ai", false, "request the AI-safe view")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.adapter.GetProfile(ctx, models.ProfileRequest{Owner: *owner, Level: *level, AISafe: *aiSafe})
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	return a.printJSON(resp)
}

func (a *App) profileEntry(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("entry", flag.ContinueOnError)
	owner := fs.String("owner", "", "profile owner username")
	id := fs.Int64("id", 0, "entry id")
	level := fs.String("level", "", "requested privacy level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entry, err := a.adapter.GetProfileEntry(ctx, models.ProfileRequest{Owner: *owner, Level: *level}, *id)
	if err != nil {
		return fmt.Errorf("get profile entry: %w", err)
	}

	return a.printJSON(entry)
}

func (a *App) listEntries(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("entries", flag.ContinueOnError)
	visibility := fs.String("visibility", "", "comma-separated visibility markers to filter by")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.EntryListRequest{}
	if *visibility != "" {
		for _, v := range strings.Split(*visibility, ",") {
			req.Visibilities = append(req.Visibilities, models.ParseVisibility(v))
		}
	}

	entries, err := a.adapter.ListOwnEntries(ctx, req)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	return a.printJSON(entries)
}

func (a *App) addEntry(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	title := fs.String("title", "", "entry title")
	content := fs.String("content", "", "entry content")
	visibility := fs.String("visibility", "", "entry visibility (public, unlisted, private)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	saved, err := a.adapter.CreateEntry(ctx, models.DataEntry{
		Title:      *title,
		Content:    *content,
		Visibility: models.Visibility(*visibility),
	})
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}

	return a.printJSON(saved)
}

// settings fetches the caller's privacy settings. When any toggle flag is
// provided it applies the changes on top of the stored value and saves the
// result; otherwise it only prints the current state.
func (a *App) settings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	showContact := fs.Bool("show-contact", false, "expose contact fields at permissive levels")
	businessCard := fs.Bool("business-card", false, "force the most restrictive level for every requester")
	aiAccess := fs.Bool("ai-access", false, "allow AI assistants to read the profile")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := a.adapter.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	changed := false
	fs.Visit(func(f *flag.Flag) {
		changed = true
		switch f.Name {
		case "show-contact":
			settings.ShowContactInfo = *showContact
		case "business-card":
			settings.BusinessCardMode = *businessCard
		case "ai-access":
			settings.AIAssistantAccess = *aiAccess
		}
	})

	if changed {
		settings, err = a.adapter.SaveSettings(ctx, settings)
		if err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		a.logger.Info().Msg("settings updated")
	}

	return a.printJSON(settings)
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	fmt.Fprintln(a.out, string(data))
	return nil
}
