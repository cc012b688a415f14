// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
)

// restPrefix is where a PostgREST-compatible server mounts the tables.
const restPrefix = "/rest/v1/"

// Connection is an HTTP client bound to one REST endpoint.
type Connection struct {
	client *resty.Client

	logger *logger.Logger
}

// NewConnection normalises and validates cfg.HTTPAddress and configures the
// underlying resty client with the base URL and the request timeout. When
// cfg.APIKey is set it is sent on every request as the apikey header and as a
// bearer token.
func NewConnection(cfg config.Adapter, log *logger.Logger) (*Connection, error) {
	if log == nil {
		log = logger.Nop()
	}

	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey != "" {
		client.
			SetHeader("apikey", apiKey).
			SetAuthToken(apiKey)
	}

	log.Debug().Str("func", "NewConnection").Str("base_url", baseURL).Msg("rest connection configured")

	return &Connection{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL returns the normalised server address.
func (c *Connection) BaseURL() string {
	return c.client.BaseURL
}

func (c *Connection) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}
