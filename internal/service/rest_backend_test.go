// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garage/internal/adapter"
	"github.com/MKhiriev/go-garage/internal/billing"
	"github.com/MKhiriev/go-garage/internal/config"
	handler "github.com/MKhiriev/go-garage/internal/handler/http"
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/models"
)

// newRESTServices поднимает REST-сервер поверх SQLite и подключает к нему адаптер
func newRESTServices(t *testing.T, cfg config.Billing) *Services {
	t.Helper()

	_, tables := newSQLiteBackend(t)
	srv := httptest.NewServer(handler.NewHandler(tables, "test", logger.Nop()).Init())
	t.Cleanup(srv.Close)

	conn, err := adapter.NewConnection(config.Adapter{
		HTTPAddress:    srv.URL,
		APIKey:         "anon-key",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return NewServices(NewAdapterBackend(adapter.NewTables(conn)), cfg, nil, logger.Nop())
}

func TestRESTBackend_ResourceRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newRESTServices(t, config.Billing{})
	client := createClient(t, s)
	assert.Equal(t, models.ClientStatusActive, client.Status)

	vehicle, err := s.Resources.Vehicles.Create(ctx, models.VehicleInsert{
		ClientID: client.ID, Make: "Renault", Model: "Clio", Year: 2021, LicensePlate: "EF-456-GH",
	})
	require.NoError(t, err)
	require.NotNil(t, vehicle.Joined.Client)
	assert.Equal(t, "Marie Curie", vehicle.Joined.Client.Name)

	intervention, err := s.Resources.Interventions.Create(ctx, models.InterventionInsert{
		VehicleID: vehicle.Row.ID,
		ClientID:  client.ID,
		Type:      "brakes",
		Date:      "2026-05-10",
		Duration:  90,
		Cost:      d("189.90"),
		Parts:     []models.Part{{Name: "Brake pads", Quantity: d("2"), UnitPrice: d("45.50")}},
	})
	require.NoError(t, err)
	require.Len(t, intervention.Row.Parts, 1)
	assert.Equal(t, "Brake pads", intervention.Row.Parts[0].Name)
	require.NotNil(t, intervention.Joined.Vehicle)
	assert.Equal(t, "EF-456-GH", intervention.Joined.Vehicle.LicensePlate)

	status := models.InterventionStatusCompleted
	updated, err := s.Resources.Interventions.Update(ctx, intervention.Row.ID, models.InterventionPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.InterventionStatusCompleted, updated.Row.Status)
	assert.Equal(t, "Clio", updated.Joined.Vehicle.Model)

	require.NoError(t, s.Resources.RefreshAll(ctx))
	assert.Equal(t, 1, s.Resources.Clients.Len())
	assert.Equal(t, 1, s.Resources.Vehicles.Len())
	assert.Equal(t, 1, s.Resources.Interventions.Len())

	require.NoError(t, s.Resources.Interventions.Remove(ctx, intervention.Row.ID))
	assert.Zero(t, s.Resources.Interventions.Len())

	err = s.Resources.Interventions.Remove(ctx, intervention.Row.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	_, err = s.Resources.Clients.Update(ctx, "missing", models.ClientPatch{Name: ptr("Pierre")})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, "Marie Curie", s.Resources.Clients.List()[0].Name)
}

func TestRESTBackend_SubmitQuote(t *testing.T) {
	ctx := context.Background()
	s := newRESTServices(t, config.Billing{})
	client := createClient(t, s)

	created, err := s.Quotes.Submit(ctx, billing.NewQuoteDraft(client.ID, time.Now()), threeItems())
	require.NoError(t, err)
	assert.True(t, d("300.12").Equal(created.Document.Row.TotalAmount), created.Document.Row.TotalAmount.String())
	assert.Equal(t, models.QuoteStatusDraft, created.Document.Row.Status)

	items, err := s.QuoteItems(ctx, created.Document.Row.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Labour", items[2].Description)
	assert.Equal(t, 2, items[2].SortOrder)

	// повторный номер отклоняется сервером
	draft := billing.NewQuoteDraft(client.ID, time.Now())
	draft.QuoteNumber = created.Document.Row.QuoteNumber
	_, err = s.Quotes.Submit(ctx, draft, threeItems())
	assert.ErrorIs(t, err, billing.ErrSubmitFailed)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, 1, s.Resources.Quotes.Len())
}
