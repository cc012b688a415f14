// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
)

const defaultRefreshInterval = time.Minute

// RefreshJob calls Refresher.RefreshAll on a ticker.
type RefreshJob struct {
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that is idle until Start is called. A
// non-positive interval defaults to one minute.
func NewRefreshJob(refresher Refresher, cfg config.Workers, log *logger.Logger) *RefreshJob {
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if log == nil {
		log = logger.Nop()
	}

	return &RefreshJob{
		refresher: refresher,
		interval:  interval,
		logger:    log,
	}
}

// Start implements Worker. It stops any previously running job, then launches
// a goroutine refreshing every interval until ctx is cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Str("func", "RefreshJob.Start").Dur("interval", j.interval).Msg("refresh job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements Worker.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *RefreshJob) tick(ctx context.Context) {
	if err := j.refresher.RefreshAll(ctx); err != nil && ctx.Err() == nil {
		// the failing resources already notified; the next tick retries
		j.logger.Warn().Err(err).Str("func", "RefreshJob.tick").Msg("background refresh failed")
	}
}
