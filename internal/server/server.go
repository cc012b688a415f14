// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds a server for handler listening on cfg.HTTPAddress.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Run(ctx context.Context) error {
	l, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	return s.serve(ctx, l)
}

func (s *server) Shutdown() {
	_ = s.httpServer.Shutdown()
}

func (s *server) serve(ctx context.Context, l net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(l)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stopping HTTP server")
	if err := s.httpServer.Shutdown(); err != nil {
		return err
	}
	return <-serveErr
}
