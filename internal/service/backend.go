// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-garage/internal/adapter"
	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/store"
	"github.com/MKhiriev/go-garage/models"
)

// Backend is every garage table behind one remote store.
type Backend struct {
	Clients       Table[models.Client, models.ClientInsert, models.ClientPatch]
	Vehicles      Table[models.VehicleView, models.VehicleInsert, models.VehiclePatch]
	Appointments  Table[models.AppointmentView, models.AppointmentInsert, models.AppointmentPatch]
	Interventions Table[models.InterventionView, models.InterventionInsert, models.InterventionPatch]
	Invoices      Table[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch]
	InvoiceItems  Table[models.InvoiceItem, models.InvoiceItemInsert, models.LineItemPatch]
	Quotes        Table[models.QuoteView, models.QuoteInsert, models.QuotePatch]
	QuoteItems    Table[models.QuoteItem, models.QuoteItemInsert, models.LineItemPatch]

	// Close releases the connection behind the tables.
	Close func() error
}

// NewAdapterBackend serves the tables over the REST adapter.
func NewAdapterBackend(t *adapter.Tables) Backend {
	return Backend{
		Clients:       t.Clients,
		Vehicles:      t.Vehicles,
		Appointments:  t.Appointments,
		Interventions: t.Interventions,
		Invoices:      t.Invoices,
		InvoiceItems:  t.InvoiceItems,
		Quotes:        t.Quotes,
		QuoteItems:    t.QuoteItems,
		Close:         func() error { return nil },
	}
}

// NewStoreBackend serves the tables straight from the SQL store.
func NewStoreBackend(r *store.Repositories, closeFn func() error) Backend {
	if closeFn == nil {
		closeFn = func() error { return nil }
	}
	return Backend{
		Clients:       r.Clients,
		Vehicles:      r.Vehicles,
		Appointments:  r.Appointments,
		Interventions: r.Interventions,
		Invoices:      r.Invoices,
		InvoiceItems:  r.InvoiceItems,
		Quotes:        r.Quotes,
		QuoteItems:    r.QuoteItems,
		Close:         closeFn,
	}
}

// OpenBackend picks the REST adapter when cfg names a server and the local
// database otherwise. A local database is migrated before use.
func OpenBackend(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (Backend, error) {
	if cfg.UsesAdapter() {
		conn, err := adapter.NewConnection(cfg.Adapter, log)
		if err != nil {
			return Backend{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		}
		log.Info().Str("func", "OpenBackend").Str("url", conn.BaseURL()).Msg("using REST backend")
		return NewAdapterBackend(adapter.NewTables(conn)), nil
	}

	db, err := store.Connect(ctx, cfg.DB, log)
	if err != nil {
		return Backend{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return Backend{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	log.Info().Str("func", "OpenBackend").Str("driver", db.Driver()).Msg("using local database backend")

	repos := store.NewRepositories(store.NewGarageTables(db, log))
	return NewStoreBackend(repos, db.Close), nil
}
