// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed REST requests. Callers can match against them
// with [errors.Is].
var (
	// ErrMissingIDFilter is returned when a PATCH or DELETE does not select
	// its row with id=eq.{id}.
	ErrMissingIDFilter = errors.New("an id=eq.{id} filter is required")

	// ErrUnsupportedFilter is returned for a filter operator other than eq.
	ErrUnsupportedFilter = errors.New("unsupported filter")

	// ErrReadingBody is returned when the request body cannot be read.
	ErrReadingBody = errors.New("error reading request body")

	// ErrBodyTooLarge is returned when a write request body exceeds the
	// size limit.
	ErrBodyTooLarge = errors.New("request body too large")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
