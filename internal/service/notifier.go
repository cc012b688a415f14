// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/resource"
)

// LogNotifier writes notifications to the logger.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ctx context.Context, note resource.Notification) {
	if note.Level == resource.LevelError {
		n.logger.Warn().Err(note.Err).Str("title", note.Title).Msg(note.Message)
		return
	}
	n.logger.Info().Str("title", note.Title).Msg(note.Message)
}

// WriterNotifier prints one line per notification, e.g.
// "Error: Unable to load invoices: connection refused".
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(_ context.Context, note resource.Notification) {
	line := fmt.Sprintf("%s: %s", note.Title, note.Message)
	if note.Err != nil {
		line += ": " + note.Err.Error()
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.w, line)
}

// Notifiers fans a notification out to every notifier.
type Notifiers []resource.Notifier

func (ns Notifiers) Notify(ctx context.Context, note resource.Notification) {
	for _, n := range ns {
		if n != nil {
			n.Notify(ctx, note)
		}
	}
}
