// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
)

func testConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name    string
		handler http.Handler
		cfg     config.Server
		wantErr error
	}{
		{name: "valid", handler: okHandler(), cfg: testConfig()},
		{name: "no address", handler: okHandler(), cfg: config.Server{}, wantErr: errNoServersAreCreated},
		{name: "no handler", cfg: testConfig(), wantErr: errNoHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handler, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := testConfig()
	cfg.RequestTimeout = 3 * time.Second

	h := newHTTPServer(okHandler(), cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:0", h.server.Addr)
	assert.Equal(t, 3*time.Second, h.server.ReadHeaderTimeout)
	assert.Equal(t, 3*time.Second, h.server.WriteTimeout)
	assert.Equal(t, time.Second, h.shutdownTimeout)
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	s, err := NewServer(okHandler(), testConfig(), logger.Nop())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).serve(ctx, l) }()

	resp, err := http.Get("http://" + l.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig()
	cfg.HTTPAddress = busy.Addr().String()
	s, err := NewServer(okHandler(), cfg, logger.Nop())
	require.NoError(t, err)

	// адрес уже занят, Run должен сразу вернуть ошибку
	err = s.Run(context.Background())
	assert.ErrorIs(t, err, errListening)
}

func TestServer_Shutdown_NotStarted(t *testing.T) {
	s, err := NewServer(okHandler(), testConfig(), logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, s.Shutdown)
}
