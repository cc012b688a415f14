// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"

	"github.com/MKhiriev/go-garage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resource_store_mock.go -package=mock -exclude_interfaces=Notifier

// Store is the authoritative remote table of one entity kind.
//
// T is the row as read back (possibly enriched with joined snapshots),
// I the insert payload and P the partial-update patch.
type Store[T models.Record, I any, P any] interface {
	// FetchAll returns every row, ordered remotely by order.
	FetchAll(ctx context.Context, order []models.Order) ([]T, error)

	// InsertOne writes payload and returns the stored row.
	InsertOne(ctx context.Context, payload I) (T, error)

	// UpdateOne applies patch to the row with id and returns the stored row.
	// A missing id is an error.
	UpdateOne(ctx context.Context, id string, patch P) (T, error)

	// DeleteOne removes the row with id.
	DeleteOne(ctx context.Context, id string) error
}

// Notifier surfaces operation outcomes to a human.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
