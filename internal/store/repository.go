// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-garage/models"
)

// Repository is a typed view of one table over a [TableStore]. T is the row
// as read (with its joined snapshots), I the insert payload and P the patch.
// Payloads and rows cross the untyped layer through their JSON form.
type Repository[T models.Record, I any, P any] struct {
	tables TableStore
	table  string
}

// NewRepository returns the typed view of table.
func NewRepository[T models.Record, I any, P any](tables TableStore, table string) *Repository[T, I, P] {
	return &Repository[T, I, P]{tables: tables, table: table}
}

// Table returns the table name.
func (r *Repository[T, I, P]) Table() string {
	return r.table
}

// FetchAll returns every row ordered by order.
func (r *Repository[T, I, P]) FetchAll(ctx context.Context, order []models.Order) ([]T, error) {
	return r.FetchWhere(ctx, nil, order)
}

// FetchWhere returns the rows whose columns equal eq, ordered by order.
func (r *Repository[T, I, P]) FetchWhere(ctx context.Context, eq map[string]string, order []models.Order) ([]T, error) {
	rows, err := r.tables.Select(ctx, r.table, Query{Eq: eq, Order: order})
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		record, err := decodeRecord[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

// InsertOne writes payload and returns the stored row.
func (r *Repository[T, I, P]) InsertOne(ctx context.Context, payload I) (T, error) {
	var zero T

	row, err := encodeRow(payload)
	if err != nil {
		return zero, err
	}

	stored, err := r.tables.Insert(ctx, r.table, []Row{row})
	if err != nil {
		return zero, err
	}
	if len(stored) != 1 {
		return zero, fmt.Errorf("%w: insert into %s returned %d rows", ErrExecutingStatement, r.table, len(stored))
	}

	return decodeRecord[T](stored[0])
}

// InsertMany writes every payload, all or nothing.
func (r *Repository[T, I, P]) InsertMany(ctx context.Context, payloads []I) error {
	rows := make([]Row, 0, len(payloads))
	for _, p := range payloads {
		row, err := encodeRow(p)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	_, err := r.tables.Insert(ctx, r.table, rows)
	return err
}

// UpdateOne applies patch to the row with id and returns the stored row.
func (r *Repository[T, I, P]) UpdateOne(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	row, err := encodeRow(patch)
	if err != nil {
		return zero, err
	}

	stored, err := r.tables.Update(ctx, r.table, id, row)
	if err != nil {
		return zero, err
	}

	return decodeRecord[T](stored)
}

// DeleteOne removes the row with id.
func (r *Repository[T, I, P]) DeleteOne(ctx context.Context, id string) error {
	return r.tables.Delete(ctx, r.table, id)
}

func encodeRow(v any) (Row, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return RowFromJSON(data)
}

func decodeRecord[T any](row Row) (T, error) {
	var out T

	data, err := json.Marshal(row)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if err = json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}
