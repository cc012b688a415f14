// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter reaches the garage tables over a PostgREST-compatible REST
// API.
//
// [Connection] holds the HTTP client; [Table] is the typed remote table of
// one entity kind and satisfies the remote-store contract of the resource
// layer. HTTP statuses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can match them with [errors.Is] (e.g. [ErrConflict]
// for 409, [ErrNotFound] for 404).
package adapter

import (
	"github.com/MKhiriev/go-garage/internal/resource"
	"github.com/MKhiriev/go-garage/models"
)

var _ resource.Store[models.VehicleView, models.VehicleInsert, models.VehiclePatch] = (*Table[models.VehicleView, models.VehicleInsert, models.VehiclePatch])(nil)
