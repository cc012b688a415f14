// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoHandler           = errors.New("no http handler")
	errListening           = errors.New("error listening on address")
	errShuttingDown        = errors.New("error shutting down server")
)
