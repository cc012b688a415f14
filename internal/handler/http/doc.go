// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the garage server.
//
// It serves a PostgREST-compatible subset over the SQL tables:
//
//	GET    /rest/v1/{table}?select=…&order=col.asc&col=eq.value
//	POST   /rest/v1/{table}            (object or array body)
//	PATCH  /rest/v1/{table}?id=eq.{id}
//	DELETE /rest/v1/{table}?id=eq.{id}
//
// Request tracing, access logging, panic recovery and response compression
// are handled by middleware before a request reaches the tables.
package http
