// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-garage/internal/adapter"
	"github.com/MKhiriev/go-garage/internal/resource"
	"github.com/MKhiriev/go-garage/internal/store"
	"github.com/MKhiriev/go-garage/models"
)

// Table is one remote table: the resource store contract plus the filtered
// read and the bulk write line items need.
type Table[T models.Record, I any, P any] interface {
	resource.Store[T, I, P]

	// FetchWhere returns the rows whose columns equal eq.
	FetchWhere(ctx context.Context, eq map[string]string, order []models.Order) ([]T, error)

	// InsertMany writes payloads in one request.
	InsertMany(ctx context.Context, payloads []I) error
}

// Refresher reloads one resource.
type Refresher interface {
	Refresh(ctx context.Context) error
	Labels() resource.Labels
	Len() int
}

var (
	_ Table[models.VehicleView, models.VehicleInsert, models.VehiclePatch]      = (*adapter.Table[models.VehicleView, models.VehicleInsert, models.VehiclePatch])(nil)
	_ Table[models.InvoiceItem, models.InvoiceItemInsert, models.LineItemPatch] = (*store.Repository[models.InvoiceItem, models.InvoiceItemInsert, models.LineItemPatch])(nil)
	_ Refresher                                                                 = (*ClientResource)(nil)
)
