// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/store"
	"github.com/MKhiriev/go-garage/models"
)

var errorStatusMap = map[error]int{
	ErrMissingIDFilter:   http.StatusBadRequest,
	ErrUnsupportedFilter: http.StatusBadRequest,
	ErrReadingBody:       http.StatusBadRequest,
	ErrBodyTooLarge:      http.StatusRequestEntityTooLarge,
	ErrRouteNotFound:     http.StatusNotFound,
	ErrMethodNotAllowed:  http.StatusMethodNotAllowed,

	models.ErrInvalidOrder: http.StatusBadRequest,

	store.ErrNotFound:        http.StatusNotFound,
	store.ErrUnknownTable:    http.StatusNotFound,
	store.ErrUnknownColumn:   http.StatusBadRequest,
	store.ErrInvalidPayload:  http.StatusBadRequest,
	store.ErrNothingToUpdate: http.StatusBadRequest,
	store.ErrConflict:        http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorCodes are the PostgREST-style codes reported next to the message.
var errorCodes = map[int]string{
	http.StatusBadRequest:       "PGRST100",
	http.StatusNotFound:         "PGRST205",
	http.StatusMethodNotAllowed: "PGRST117",
	http.StatusConflict:         "23505",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorBody is the JSON error returned to clients.
type errorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// writeError logs err and answers with its status. Server-side failures are
// reported without their details.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	_, _ = writeJSON(w, errorBody{Code: errorCodes[status], Message: message}, status)
}
