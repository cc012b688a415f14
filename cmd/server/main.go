// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/handler"
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/server"
	"github.com/MKhiriev/go-garage/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	decimal.MarshalJSONWithoutQuotes = true

	log := logger.NewLogger("garage-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Version == "" {
		cfg.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())
	db, err := store.Connect(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	handlers, err := handler.NewHandlers(store.NewGarageTables(db, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
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
