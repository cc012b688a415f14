// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-garage/models"
)

// Prefer header values understood by PostgREST-compatible servers.
const (
	returnRepresentation = "return=representation"
	returnMinimal        = "return=minimal"
)

// Table is the remote table of one entity kind. T is the row as read back,
// I the insert payload and P the patch; selection is the select clause that
// embeds the joined snapshots ("*,client:clients(name,phone)").
type Table[T models.Record, I any, P any] struct {
	conn      *Connection
	name      string
	selection string
}

// NewTable returns the remote table name, read with selection.
func NewTable[T models.Record, I any, P any](conn *Connection, name, selection string) *Table[T, I, P] {
	if selection == "" {
		selection = "*"
	}
	return &Table[T, I, P]{conn: conn, name: name, selection: selection}
}

// Name returns the table name.
func (t *Table[T, I, P]) Name() string {
	return t.name
}

func (t *Table[T, I, P]) path() string {
	return restPrefix + t.name
}

// FetchAll implements the remote-store contract:
// GET /rest/v1/{table}?select=…&order=…
func (t *Table[T, I, P]) FetchAll(ctx context.Context, order []models.Order) ([]T, error) {
	return t.FetchWhere(ctx, nil, order)
}

// FetchWhere narrows FetchAll with column=eq.value filters.
func (t *Table[T, I, P]) FetchWhere(ctx context.Context, eq map[string]string, order []models.Order) ([]T, error) {
	req := t.conn.request(ctx).SetQueryParam("select", t.selection)
	if len(order) > 0 {
		req.SetQueryParam("order", models.FormatOrder(order))
	}
	for column, value := range eq {
		req.SetQueryParam(column, "eq."+value)
	}

	resp, err := req.Get(t.path())
	if err != nil {
		return nil, t.sendError(err, "Table.FetchWhere")
	}
	if err = t.mapError(resp, "Table.FetchWhere"); err != nil {
		return nil, err
	}

	return decodeRows[T](resp.Body())
}

// InsertOne implements the remote-store contract:
// POST /rest/v1/{table}?select=… with Prefer: return=representation.
func (t *Table[T, I, P]) InsertOne(ctx context.Context, payload I) (T, error) {
	var zero T

	resp, err := t.conn.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", returnRepresentation).
		SetQueryParam("select", t.selection).
		SetBody(payload).
		Post(t.path())
	if err != nil {
		return zero, t.sendError(err, "Table.InsertOne")
	}
	if err = t.mapError(resp, "Table.InsertOne"); err != nil {
		return zero, err
	}

	return singleRow[T](resp.Body())
}

// InsertMany writes every payload in one request. The server stores all of
// them or none.
func (t *Table[T, I, P]) InsertMany(ctx context.Context, payloads []I) error {
	if len(payloads) == 0 {
		return nil
	}

	resp, err := t.conn.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", returnMinimal).
		SetBody(payloads).
		Post(t.path())
	if err != nil {
		return t.sendError(err, "Table.InsertMany")
	}

	return t.mapError(resp, "Table.InsertMany")
}

// UpdateOne implements the remote-store contract:
// PATCH /rest/v1/{table}?id=eq.{id}&select=…
// An empty representation means no row matched and is [ErrNotFound].
func (t *Table[T, I, P]) UpdateOne(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	resp, err := t.conn.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", returnRepresentation).
		SetQueryParam("id", "eq."+id).
		SetQueryParam("select", t.selection).
		SetBody(patch).
		Patch(t.path())
	if err != nil {
		return zero, t.sendError(err, "Table.UpdateOne")
	}
	if err = t.mapError(resp, "Table.UpdateOne"); err != nil {
		return zero, err
	}

	row, err := singleRow[T](resp.Body())
	if err != nil {
		return zero, fmt.Errorf("%w: %s %s", err, t.name, id)
	}
	return row, nil
}

// DeleteOne implements the remote-store contract:
// DELETE /rest/v1/{table}?id=eq.{id}
// A 404, or an empty representation, is [ErrNotFound]. A body that is
// neither a row nor an array of rows is [ErrUnexpectedResponse].
func (t *Table[T, I, P]) DeleteOne(ctx context.Context, id string) error {
	resp, err := t.conn.request(ctx).
		SetHeader("Prefer", returnRepresentation).
		SetQueryParam("id", "eq."+id).
		SetQueryParam("select", "id").
		Delete(t.path())
	if err != nil {
		return t.sendError(err, "Table.DeleteOne")
	}
	if err = t.mapError(resp, "Table.DeleteOne"); err != nil {
		return err
	}

	if resp.StatusCode() == http.StatusNoContent || len(bytes.TrimSpace(resp.Body())) == 0 {
		return nil
	}

	deleted, err := decodeRows[json.RawMessage](resp.Body())
	if err != nil {
		t.conn.logger.Err(err).Str("func", "Table.DeleteOne").Str("table", t.name).Msg("unexpected delete representation")
		return fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, t.name, err)
	}
	if len(deleted) == 0 {
		return fmt.Errorf("%w: %s %s", ErrNotFound, t.name, id)
	}
	return nil
}

func (t *Table[T, I, P]) sendError(err error, fn string) error {
	t.conn.logger.Err(err).Str("func", fn).Str("table", t.name).Msg("request failed")
	return fmt.Errorf("%w: %s: %w", ErrSendingRequest, t.name, err)
}

func (t *Table[T, I, P]) mapError(resp *resty.Response, fn string) error {
	err := mapHTTPError(resp)
	if err != nil {
		t.conn.logger.Err(err).
			Str("func", fn).
			Str("table", t.name).
			Int("status", resp.StatusCode()).
			Msg("remote store rejected the request")
	}
	return err
}

// decodeRows reads an array of rows; a single object is accepted as a
// one-row array.
func decodeRows[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var row T
		if err := json.Unmarshal(trimmed, &row); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
		}
		return []T{row}, nil
	}

	rows := make([]T, 0)
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return rows, nil
}

// singleRow reads the one row of a representation.
func singleRow[T any](body []byte) (T, error) {
	var zero T

	rows, err := decodeRows[T](body)
	if err != nil {
		return zero, err
	}
	switch len(rows) {
	case 0:
		return zero, ErrNotFound
	case 1:
		return rows[0], nil
	default:
		return zero, fmt.Errorf("%w: %d rows returned, expected one", ErrUnexpectedResponse, len(rows))
	}
}
