// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
)

// spyRefresher считает вызовы RefreshAll
type spyRefresher struct {
	calls atomic.Int64
	err   error
}

func (s *spyRefresher) RefreshAll(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func newJob(r Refresher, interval time.Duration) *RefreshJob {
	return NewRefreshJob(r, config.Workers{RefreshInterval: interval}, logger.Nop())
}

// ── RefreshJob ───────────────────────────────────────────────────────────────

func TestRefreshJob_Start_CallsRefreshAll(t *testing.T) {
	spy := &spyRefresher{}
	job := newJob(spy, 10*time.Millisecond)

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshAll должен быть вызван несколько раз, вызвано: %d", got)
}

func TestRefreshJob_KeepsRunningAfterFailure(t *testing.T) {
	spy := &spyRefresher{err: errors.New("offline")}
	job := newJob(spy, 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRefresher{}
	job := newJob(spy, 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestRefreshJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyRefresher{}
	job := newJob(spy, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	cancel()
	job.Stop()

	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := newJob(&spyRefresher{}, time.Second)

	// Stop без Start не должен паниковать
	assert.NotPanics(t, job.Stop)
}

func TestRefreshJob_DoubleStart_RestartsJob(t *testing.T) {
	spy := &spyRefresher{}
	job := newJob(spy, 10*time.Millisecond)

	job.Start(context.Background())
	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.NotPanics(t, job.Stop)
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}

func TestNewRefreshJob_DefaultInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{name: "zero", interval: 0, want: defaultRefreshInterval},
		{name: "negative", interval: -time.Second, want: defaultRefreshInterval},
		{name: "explicit", interval: 5 * time.Second, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newJob(&spyRefresher{}, tt.interval).interval)
		})
	}
}

// ── Workers ──────────────────────────────────────────────────────────────────

// orderWorker записывает порядок вызовов Start и Stop
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Start(context.Context) { *o.order = append(*o.order, o.id) }
func (o *orderWorker) Stop()                 { *o.order = append(*o.order, -o.id) }

func TestWorkers_StartStopOrder(t *testing.T) {
	var order []int
	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []int{1, 2, 3, -3, -2, -1}, order)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// пустой список не должен паниковать
	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}
