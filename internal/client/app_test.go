// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garage/internal/billing"
	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/service"
	"github.com/MKhiriev/go-garage/internal/store"
	"github.com/MKhiriev/go-garage/models"
)

var fixedNow = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

// newTestBackend открывает мигрированную SQLite в памяти
func newTestBackend(t *testing.T) service.Backend {
	t.Helper()
	ctx := context.Background()

	db, err := store.Connect(ctx, config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	t.Cleanup(func() { _ = db.Close() })

	return service.NewStoreBackend(store.NewRepositories(store.NewGarageTables(db, logger.Nop())), db.Close)
}

func newTestApp(t *testing.T, backend service.Backend) (*App, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	services := service.NewServices(backend, config.Billing{}, nil, logger.Nop())
	app, err := NewApp(services, &config.ClientConfig{Workers: config.Workers{RefreshInterval: 10 * time.Millisecond}}, &out, logger.Nop())
	require.NoError(t, err)
	app.now = func() time.Time { return fixedNow }

	return app, &out
}

func run(t *testing.T, app *App, out *bytes.Buffer, args ...string) (string, error) {
	t.Helper()
	out.Reset()
	err := app.Run(context.Background(), args)
	return out.String(), err
}

func seedClient(t *testing.T, app *App) models.Client {
	t.Helper()
	c, err := app.services.Resources.Clients.Create(context.Background(), models.ClientInsert{Name: "Marie Curie"})
	require.NoError(t, err)
	return c
}

// ── dispatch ─────────────────────────────────────────────────────────────────

func TestApp_Usage(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))

	got, err := run(t, app, out)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, got, "commands:")
	assert.Contains(t, got, "invoice -client <id>")
	assert.Contains(t, got, "kinds: appointments, clients, interventions, invoices, quotes, vehicles")

	_, err = run(t, app, out, "help")
	assert.NoError(t, err)

	_, err = run(t, app, out, "explode")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestApp_ArgumentErrors(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "list without kind", args: []string{"list"}, wantErr: ErrUsage},
		{name: "unknown kind", args: []string{"list", "boats"}, wantErr: ErrUnknownKind},
		{name: "get without id", args: []string{"get", "clients"}, wantErr: ErrUsage},
		{name: "create without data", args: []string{"create", "clients"}, wantErr: ErrUsage},
		{name: "create with unknown field", args: []string{"create", "clients", "-data", `{"nom":"Marie"}`}, wantErr: ErrInvalidData},
		{name: "create with bad json", args: []string{"create", "clients", "-data", `{`}, wantErr: ErrInvalidData},
		{name: "create invoice without items", args: []string{"create", "invoices", "-data", `{"client_id":"c1","invoice_number":"FAC-9","date":"2026-05-10","amount":999}`}, wantErr: ErrUsage},
		{name: "create quote without items", args: []string{"create", "quotes", "-data", `{"client_id":"c1","quote_number":"DEV-9","date":"2026-05-10","total_amount":999}`}, wantErr: ErrUsage},
		{name: "update without data", args: []string{"update", "clients", "c-1"}, wantErr: ErrUsage},
		{name: "items without id", args: []string{"items", "invoice"}, wantErr: ErrUsage},
		{name: "items of unknown kind", args: []string{"items", "boat", "1"}, wantErr: ErrUnknownKind},
		{name: "bad item", args: []string{"price", "-item", "Oil change"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, app, out, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── resource commands ────────────────────────────────────────────────────────

func TestApp_ClientCommands(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))

	got, err := run(t, app, out, "create", "clients", "-data", `{"name":"Marie Curie","phone":"0611223344"}`)
	require.NoError(t, err)
	assert.Contains(t, got, `"name": "Marie Curie"`)

	clients := app.services.Resources.Clients.List()
	require.Len(t, clients, 1)
	id := clients[0].ID

	got, err = run(t, app, out, "list", "clients")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Marie Curie")
	assert.Contains(t, lines[1], "0611223344")
	assert.Contains(t, lines[1], "active")

	got, err = run(t, app, out, "update", "clients", id, "-data", `{"status":"inactive"}`)
	require.NoError(t, err)
	assert.Contains(t, got, `"status": "inactive"`)

	got, err = run(t, app, out, "get", "clients", id)
	require.NoError(t, err)
	assert.Contains(t, got, `"id": "`+id+`"`)

	got, err = run(t, app, out, "delete", "clients", id)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id+"\n", got)

	_, err = run(t, app, out, "get", "clients", id)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = run(t, app, out, "delete", "clients", id)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApp_ListVehiclesShowsOwner(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))
	client := seedClient(t, app)

	_, err := run(t, app, out, "create", "vehicles", "-data",
		`{"client_id":"`+client.ID+`","make":"Peugeot","model":"208","year":2019,"license_plate":"AB-123-CD"}`)
	require.NoError(t, err)

	got, err := run(t, app, out, "list", "vehicles")
	require.NoError(t, err)
	assert.Contains(t, got, "Peugeot 208")
	assert.Contains(t, got, "AB-123-CD")
	assert.Contains(t, got, "Marie Curie")
}

// ── billing commands ─────────────────────────────────────────────────────────

var lineArgs = []string{
	"-item", "Brake pads;2;100;10;20",
	"-item", "Oil change;1;45,10",
	"-item", "Labour;3;10;0;0",
}

func TestApp_Price(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))

	got, err := run(t, app, out, append([]string{"price"}, lineArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, got, "Brake pads")
	assert.Contains(t, got, "216.00")
	assert.Contains(t, got, "54.12")
	assert.Contains(t, got, "Subtotal: 255.10")
	assert.Contains(t, got, "Discount: 20.00")
	assert.Contains(t, got, "Tax:      45.02")
	assert.Contains(t, got, "Total:    300.12")

	// без строк всё по нулям
	got, err = run(t, app, out, "price")
	require.NoError(t, err)
	assert.Contains(t, got, "Total:    0.00")
}

func TestItemsFlag_Set(t *testing.T) {
	var f itemsFlag
	require.NoError(t, f.Set("Brake pads;2;100"))
	require.NoError(t, f.Set(" Tyres ;4;80,5;5;10"))

	require.Len(t, f, 2)
	assert.Equal(t, "Brake pads", f[0].Description)
	assert.Equal(t, "20", f[0].TaxRate.String(), "default tax rate")
	assert.Equal(t, "Tyres", f[1].Description)
	assert.Equal(t, "80.5", f[1].UnitPrice.String())
	assert.Equal(t, "5", f[1].DiscountPercent.String())
	assert.Equal(t, "10", f[1].TaxRate.String())
	assert.Equal(t, 1, f[1].SortOrder)
	assert.Equal(t, "2 items", f.String())

	assert.ErrorIs(t, f.Set("a;b"), ErrInvalidItem)
	assert.ErrorIs(t, f.Set("a;1;2;3;4;5"), ErrInvalidItem)
}

func TestApp_InvoiceAndItems(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))
	client := seedClient(t, app)

	args := append([]string{"invoice", "-client", client.ID, "-due", "2026-06-09"}, lineArgs...)
	got, err := run(t, app, out, args...)
	require.NoError(t, err)
	assert.Contains(t, got, "invoice FAC-1778405400000 created")
	assert.Contains(t, got, "for Marie Curie")
	assert.Contains(t, got, "Total:    300.12")

	invoices := app.services.Resources.Invoices.List()
	require.Len(t, invoices, 1)
	assert.Equal(t, "2026-05-10", invoices[0].Row.Date)
	assert.Equal(t, "2026-06-09", *invoices[0].Row.DueDate)

	got, err = run(t, app, out, "items", "invoice", invoices[0].Row.ID)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Brake pads")
	assert.Contains(t, lines[3], "Labour")

	got, err = run(t, app, out, "list", "invoices")
	require.NoError(t, err)
	assert.Contains(t, got, "300.12")
	assert.Contains(t, got, "pending")
}

func TestApp_CreateDocumentNeedsItems(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))
	client := seedClient(t, app)

	_, err := run(t, app, out, "create", "invoices", "-data",
		`{"client_id":"`+client.ID+`","invoice_number":"FAC-9","date":"2026-05-10","amount":999}`)
	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), `"invoice" command`)

	require.NoError(t, app.services.Resources.Invoices.Refresh(context.Background()))
	assert.Zero(t, app.services.Resources.Invoices.Len())
}

func TestApp_InvoiceWithoutItems(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))
	client := seedClient(t, app)

	_, err := run(t, app, out, "invoice", "-client", client.ID)
	assert.ErrorIs(t, err, billing.ErrInvalidInput)
	assert.Zero(t, app.services.Resources.Invoices.Len())
}

func TestApp_Quote(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))
	client := seedClient(t, app)

	args := append([]string{"quote", "-client", client.ID, "-number", "DEV-42", "-status", "sent"}, lineArgs...)
	got, err := run(t, app, out, args...)
	require.NoError(t, err)
	assert.Contains(t, got, "quote DEV-42 created")

	quotes := app.services.Resources.Quotes.List()
	require.Len(t, quotes, 1)
	assert.Equal(t, models.QuoteStatus("sent"), quotes[0].Row.Status)

	got, err = run(t, app, out, "items", "quotes", quotes[0].Row.ID)
	require.NoError(t, err)
	assert.Contains(t, got, "Oil change")
}

// failingItems не принимает строки счетов
type failingItems struct {
	service.Table[models.InvoiceItem, models.InvoiceItemInsert, models.LineItemPatch]
}

func (failingItems) InsertMany(context.Context, []models.InvoiceItemInsert) error {
	return errors.New("items table unavailable")
}

func TestApp_InvoiceReportsDocumentWithoutItems(t *testing.T) {
	backend := newTestBackend(t)
	backend.InvoiceItems = failingItems{backend.InvoiceItems}
	app, out := newTestApp(t, backend)
	client := seedClient(t, app)

	got, err := run(t, app, out, append([]string{"invoice", "-client", client.ID}, lineArgs...)...)

	assert.ErrorIs(t, err, billing.ErrLineItemsNotSaved)
	assert.Contains(t, got, "warning: invoice FAC-1778405400000")
	assert.Contains(t, got, "saved without its line items")
}

// ── watch ────────────────────────────────────────────────────────────────────

func TestApp_Watch(t *testing.T) {
	app, out := newTestApp(t, newTestBackend(t))
	seedClient(t, app)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, app.Run(ctx, []string{"watch"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.GreaterOrEqual(t, len(lines), 2, "initial refresh plus ticks")
	assert.Contains(t, lines[0], "09:30:00 clients=1 vehicles=0")
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, &config.ClientConfig{}, &bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, ErrUsage)
}
