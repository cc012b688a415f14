// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/resource"
)

func TestWriterNotifier(t *testing.T) {
	tests := []struct {
		name string
		note resource.Notification
		want string
	}{
		{
			name: "success",
			note: resource.Notification{Level: resource.LevelSuccess, Title: "Success", Message: "Invoice created"},
			want: "Success: Invoice created\n",
		},
		{
			name: "error with cause",
			note: resource.Notification{Level: resource.LevelError, Title: "Error", Message: "Unable to load invoices", Err: errBoom},
			want: "Error: Unable to load invoices: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewWriterNotifier(&buf).Notify(context.Background(), tt.note)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Nop()
	l.Logger = l.Output(&buf).Level(0)

	n := NewLogNotifier(l)
	n.Notify(context.Background(), resource.Notification{Level: resource.LevelError, Title: "Error", Message: "Unable to delete client", Err: errBoom})
	n.Notify(context.Background(), resource.Notification{Level: resource.LevelSuccess, Title: "Success", Message: "Client deleted"})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"message":"Client deleted"`)
}

func TestNotifiers_FanOut(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	ns := Notifiers{a, nil, b}

	ns.Notify(context.Background(), resource.Notification{Level: resource.LevelError, Message: "x"})

	assert.Len(t, a.errors(), 1)
	assert.Len(t, b.errors(), 1)
}
