// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/models"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "", want: ":memory:?_foreign_keys=on"},
		{dsn: "garage.db", want: "garage.db?_foreign_keys=on"},
		{dsn: "file:garage.db?cache=shared", want: "file:garage.db?cache=shared&_foreign_keys=on"},
		{dsn: "garage.db?_foreign_keys=off", want: "garage.db?_foreign_keys=off"},
		{dsn: "garage.db?_fk=1", want: "garage.db?_fk=1"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestIsInMemorySQLite(t *testing.T) {
	assert.True(t, isInMemorySQLite(""))
	assert.True(t, isInMemorySQLite(":memory:"))
	assert.True(t, isInMemorySQLite("file:garage?mode=memory&cache=shared"))
	assert.False(t, isInMemorySQLite("garage.db"))
}

func TestFileOfDSN(t *testing.T) {
	assert.Equal(t, "garage.db", fileOfDSN("garage.db"))
	assert.Equal(t, "/var/lib/garage.db", fileOfDSN("file:/var/lib/garage.db?cache=shared"))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, db.Driver())
}

// newSQLiteTables opens a migrated in-memory database.
func newSQLiteTables(t *testing.T) *Tables {
	t.Helper()
	ctx := context.Background()

	db, err := Connect(ctx, config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	return NewGarageTables(db, logger.Nop())
}

func TestTables_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	tables := newSQLiteTables(t)

	clients, err := tables.Insert(ctx, TableClients, []Row{{"name": "Marie Curie", "phone": "0611223344"}})
	require.NoError(t, err)
	clientID, _ := clients[0]["id"].(string)
	require.NotEmpty(t, clientID)
	assert.Equal(t, "active", clients[0]["status"])

	vehicles, err := tables.Insert(ctx, TableVehicles, []Row{{
		"client_id": clientID, "make": "Peugeot", "model": "208", "year": int64(2019), "license_plate": "AB-123-CD",
	}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Marie Curie", "phone": "0611223344"}, vehicles[0]["client"])
	vehicleID, _ := vehicles[0]["id"].(string)

	updated, err := tables.Update(ctx, TableVehicles, vehicleID, Row{"mileage": int64(42000)})
	require.NoError(t, err)
	assert.EqualValues(t, 42000, updated["mileage"])

	rows, err := tables.Select(ctx, TableVehicles, Query{
		Eq:    map[string]string{"client_id": clientID},
		Order: []models.Order{{Column: "created_at"}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// клиент с машиной не удаляется
	assert.ErrorIs(t, tables.Delete(ctx, TableClients, clientID), ErrConflict)

	require.NoError(t, tables.Delete(ctx, TableVehicles, vehicleID))
	assert.ErrorIs(t, tables.Delete(ctx, TableVehicles, vehicleID), ErrNotFound)
	require.NoError(t, tables.Delete(ctx, TableClients, clientID))
}

func TestTables_SQLiteDocumentWithItems(t *testing.T) {
	ctx := context.Background()
	tables := newSQLiteTables(t)

	clients, err := tables.Insert(ctx, TableClients, []Row{{"name": "Marie Curie"}})
	require.NoError(t, err)
	clientID := clients[0]["id"]

	invoice := Row{"client_id": clientID, "invoice_number": "FAC-2026-0001", "date": "2026-05-10", "amount": "337.19"}
	invoices, err := tables.Insert(ctx, TableInvoices, []Row{invoice})
	require.NoError(t, err)
	invoiceID, _ := invoices[0]["id"].(string)

	_, err = tables.Insert(ctx, TableInvoices, []Row{invoice})
	assert.ErrorIs(t, err, ErrConflict, "invoice numbers are unique")

	_, err = tables.Insert(ctx, TableInvoiceItems, []Row{
		{"invoice_id": invoiceID, "description": "Oil change", "quantity": int64(1), "unit_price": "45.10", "sort_order": int64(0)},
		{"invoice_id": invoiceID, "description": "Brake pads", "quantity": int64(2), "unit_price": "60", "sort_order": int64(1)},
	})
	require.NoError(t, err)

	// вторая строка ссылается на несуществующий счёт: вся пачка откатывается
	_, err = tables.Insert(ctx, TableInvoiceItems, []Row{
		{"invoice_id": invoiceID, "description": "Wipers", "sort_order": int64(2)},
		{"invoice_id": "missing", "description": "Ghost", "sort_order": int64(3)},
	})
	assert.ErrorIs(t, err, ErrConflict)

	items, err := tables.Select(ctx, TableInvoiceItems, Query{
		Eq:    map[string]string{"invoice_id": invoiceID},
		Order: []models.Order{{Column: "sort_order", Ascending: true}},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Oil change", items[0]["description"])

	require.NoError(t, tables.Delete(ctx, TableInvoices, invoiceID))
	items, err = tables.Select(ctx, TableInvoiceItems, Query{Eq: map[string]string{"invoice_id": invoiceID}})
	require.NoError(t, err)
	assert.Empty(t, items, "items cascade with their invoice")
}
