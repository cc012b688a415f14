// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/table_store_mock.go -package=mock

// TableStore reads and writes untyped rows of the garage tables. It is the
// contract the REST handler serves and [Repository] builds on.
type TableStore interface {
	// Select returns the rows of table matching q, each enriched with the
	// table's joined snapshots.
	Select(ctx context.Context, table string, q Query) ([]Row, error)

	// Insert writes rows and returns them as stored. Several rows are written
	// all or nothing.
	Insert(ctx context.Context, table string, rows []Row) ([]Row, error)

	// Update applies patch to the row with id and returns it as stored.
	Update(ctx context.Context, table string, id string, patch Row) (Row, error)

	// Delete removes the row with id.
	Delete(ctx context.Context, table string, id string) error
}

// ErrorClassificator decides whether a failed database operation may succeed
// if attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification

	// IsConstraintViolation reports whether err is a rejected write.
	IsConstraintViolation(err error) bool
}
