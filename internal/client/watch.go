// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-garage/internal/workers"
)

// summaryRefresher refreshes everything and prints the cache sizes.
type summaryRefresher struct {
	app *App
}

func (s summaryRefresher) RefreshAll(ctx context.Context) error {
	err := s.app.services.Resources.RefreshAll(ctx)
	s.app.printSummary()
	return err
}

// watch refreshes once, then every refresh interval until ctx is done.
// Refresh failures are reported by the notifier and do not stop the loop.
func (a *App) watch(ctx context.Context, _ []string) error {
	refresher := summaryRefresher{app: a}
	if err := refresher.RefreshAll(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.watch").Msg("initial refresh failed")
	}

	ws := workers.NewWorkers(workers.NewRefreshJob(refresher, a.workers, a.logger))
	ws.Start(ctx)
	defer ws.Stop()

	<-ctx.Done()
	return nil
}

func (a *App) printSummary() {
	all := a.services.Resources.All()
	parts := make([]string, 0, len(all))
	for _, r := range all {
		parts = append(parts, fmt.Sprintf("%s=%d", r.Labels().Plural, r.Len()))
	}
	fmt.Fprintf(a.out, "%s %s\n", a.now().Format("15:04:05"), strings.Join(parts, " "))
}
