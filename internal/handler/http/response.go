// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// writeJSON serializes data and writes it with statusCode and a JSON content
// type. If marshaling fails it responds with 500 Internal Server Error.
func writeJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, fmt.Errorf("%w: %s", ErrRouteNotFound, r.URL.Path), "notFound")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, r.Method, r.URL.Path), "methodNotAllowed")
}
