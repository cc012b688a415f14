// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs.
//
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together. RefreshJob periodically reloads every
// resource so long-running clients see changes made elsewhere.
package workers

import "context"

// Worker is a background job. Start returns immediately; the work runs until
// ctx is done or Stop is called.
type Worker interface {
	Start(ctx context.Context)

	// Stop blocks until the job has exited. Calling it on a stopped job is a no-op.
	Stop()
}

// Refresher reloads cached data from the remote store.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}
