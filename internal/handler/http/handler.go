// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/store"
)

type Handler struct {
	tables  store.TableStore
	version string

	logger *logger.Logger
}

func NewHandler(tables store.TableStore, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		tables:  tables,
		version: version,
		logger:  logger,
	}
}
