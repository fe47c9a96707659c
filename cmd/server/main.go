// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Leskov

package main

import (
	"context"
	"fmt"

	"github.com/ileskov/personahub/internal/config"
	handler "github.com/ileskov/personahub/internal/handler/http"
	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/privacy"
	"github.com/ileskov/personahub/internal/server"
	"github.com/ileskov/personahub/internal/service"
	"github.com/ileskov/personahub/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("personahub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server config")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing storages")
		}
	}()

	engine := privacy.NewEngine(privacy.DefaultSanitizeRules()...)
	services := service.NewServices(storages, *cfg, engine, log)

	httpHandler := handler.NewHandler(services, log)

	srv, err := server.NewServer(httpHandler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
