// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-garage/internal/client"
	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log := logger.NewFileLogger("garage-client", cfg.LogFile)
	logBuildInfo(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	ctx = log.WithContext(ctx)

	backend, err := service.OpenBackend(ctx, cfg, log)
	if err != nil {
		log.Err(err).Msg("error opening backend")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	notifier := service.Notifiers{service.NewWriterNotifier(os.Stderr), service.NewLogNotifier(log)}
	services := service.NewServices(backend, cfg.Billing, notifier, log)
	defer func() {
		if err := services.Close(); err != nil {
			log.Err(err).Msg("error closing backend")
		}
	}()

	app, err := client.NewApp(services, cfg, os.Stdout, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx, cfg.Args); err != nil {
		if !errors.Is(err, client.ErrUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Info().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")
}
