// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/store"
	"github.com/MKhiriev/go-garage/models"
)

// maxBodySize bounds a write request body.
const maxBodySize = 4 << 20

// reservedParams are query parameters that are not column filters.
var reservedParams = map[string]bool{"select": true, "order": true}

// selectRows answers GET /rest/v1/{table}. The select parameter is accepted
// for compatibility; every table always returns its own columns plus its
// joined snapshots.
func (h *Handler) selectRows(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	query := r.URL.Query()

	order, err := models.ParseOrder(query.Get("order"))
	if err != nil {
		writeError(w, r, err, "*Handler.selectRows")
		return
	}

	eq, err := eqFilters(query)
	if err != nil {
		writeError(w, r, err, "*Handler.selectRows")
		return
	}

	rows, err := h.tables.Select(r.Context(), table, store.Query{Eq: eq, Order: order})
	if err != nil {
		writeError(w, r, err, "*Handler.selectRows")
		return
	}

	_, _ = writeJSON(w, rows, http.StatusOK)
}

// insertRows answers POST /rest/v1/{table} with a single object or an array
// of objects. An array is stored all or nothing.
func (h *Handler) insertRows(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	table := chi.URLParam(r, "table")

	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.insertRows")
		return
	}

	rows, err := store.RowsFromJSON(body)
	if err != nil {
		writeError(w, r, err, "*Handler.insertRows")
		return
	}

	stored, err := h.tables.Insert(r.Context(), table, rows)
	if err != nil {
		writeError(w, r, err, "*Handler.insertRows")
		return
	}
	log.Debug().Str("table", table).Int("rows", len(stored)).Msg("rows inserted")

	if !wantsRepresentation(r) {
		w.WriteHeader(http.StatusCreated)
		return
	}
	_, _ = writeJSON(w, stored, http.StatusCreated)
}

// updateRow answers PATCH /rest/v1/{table}?id=eq.{id}.
func (h *Handler) updateRow(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	id, err := idFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "*Handler.updateRow")
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateRow")
		return
	}

	patch, err := store.RowFromJSON(body)
	if err != nil {
		writeError(w, r, err, "*Handler.updateRow")
		return
	}

	row, err := h.tables.Update(r.Context(), table, id, patch)
	if err != nil {
		writeError(w, r, err, "*Handler.updateRow")
		return
	}

	if !wantsRepresentation(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_, _ = writeJSON(w, []store.Row{row}, http.StatusOK)
}

// deleteRow answers DELETE /rest/v1/{table}?id=eq.{id} with 204, or 404 when
// no row has that id.
func (h *Handler) deleteRow(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	id, err := idFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "*Handler.deleteRow")
		return
	}

	if err = h.tables.Delete(r.Context(), table, id); err != nil {
		writeError(w, r, err, "*Handler.deleteRow")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// eqFilters reads column=eq.value parameters.
func eqFilters(query url.Values) (map[string]string, error) {
	eq := make(map[string]string)
	for column, values := range query {
		if reservedParams[column] {
			continue
		}
		for _, v := range values {
			value, ok := strings.CutPrefix(v, "eq.")
			if !ok {
				return nil, fmt.Errorf("%w: %s=%s", ErrUnsupportedFilter, column, v)
			}
			eq[column] = value
		}
	}
	return eq, nil
}

func idFilter(query url.Values) (string, error) {
	id, ok := strings.CutPrefix(query.Get("id"), "eq.")
	if !ok || id == "" {
		return "", ErrMissingIDFilter
	}
	return id, nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingBody, err)
	}
	return body, nil
}

func wantsRepresentation(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Prefer"), "return=representation")
}
