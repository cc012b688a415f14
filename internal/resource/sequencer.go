// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"sync"
)

// sequencer runs operations on the same key one at a time, in call order.
// Each caller waits on the completion channel of the caller before it.
type sequencer struct {
	mu    sync.Mutex
	tails map[string]chan struct{}
}

func newSequencer() *sequencer {
	return &sequencer{tails: make(map[string]chan struct{})}
}

// acquire blocks until every earlier holder of key has released it.
// The returned release must be called exactly once.
func (s *sequencer) acquire(ctx context.Context, key string) (func(), error) {
	s.mu.Lock()
	prev := s.tails[key]
	done := make(chan struct{})
	s.tails[key] = done
	s.mu.Unlock()

	release := func() {
		close(done)

		s.mu.Lock()
		if s.tails[key] == done {
			delete(s.tails, key)
		}
		s.mu.Unlock()
	}

	if prev == nil {
		return release, nil
	}

	select {
	case <-prev:
		return release, nil
	case <-ctx.Done():
		// later callers are chained on done; keep the order intact
		go func() {
			<-prev
			release()
		}()
		return nil, ctx.Err()
	}
}
