// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"

	"github.com/MKhiriev/go-garage/models"
)

// Row is one table row keyed by column name. Joined snapshots appear under
// their alias as a nested map, or nil when the related row is missing.
type Row = map[string]any

// Query narrows a Select.
type Query struct {
	// Eq keeps rows whose column equals the value.
	Eq map[string]string

	// Order sorts the result; columns must belong to the table.
	Order []models.Order
}

// Join describes a read-only snapshot of a related row, fetched with a LEFT
// JOIN on related.id = table.LocalKey.
type Join struct {
	// As is the key of the snapshot in the row ("client").
	As string

	// Table is the related table ("clients").
	Table string

	// LocalKey is the foreign key column of the base table ("client_id").
	LocalKey string

	// Columns are the related columns copied into the snapshot.
	Columns []string
}

// TableDef describes one table.
type TableDef struct {
	Name string

	// Columns are every column of the table, in select order.
	Columns []string

	// Writable are the columns a payload may set.
	Writable []string

	// JSON are the columns holding a JSON document as text.
	JSON []string

	Joins []Join

	// CreatedAt and UpdatedAt report whether the table carries the
	// timestamp column, set by the store.
	CreatedAt bool
	UpdatedAt bool
}

func (d TableDef) hasColumn(c string) bool  { return slices.Contains(d.Columns, c) }
func (d TableDef) isWritable(c string) bool { return slices.Contains(d.Writable, c) }
func (d TableDef) isJSON(c string) bool     { return slices.Contains(d.JSON, c) }

func (d TableDef) isJoin(key string) bool {
	return slices.ContainsFunc(d.Joins, func(j Join) bool { return j.As == key })
}
