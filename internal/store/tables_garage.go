// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-garage/models"

// Table names.
const (
	TableClients       = models.TableClients
	TableVehicles      = models.TableVehicles
	TableAppointments  = models.TableAppointments
	TableInterventions = models.TableInterventions
	TableInvoices      = models.TableInvoices
	TableInvoiceItems  = models.TableInvoiceItems
	TableQuotes        = models.TableQuotes
	TableQuoteItems    = models.TableQuoteItems
)

var (
	clientName    = Join{As: "client", Table: TableClients, LocalKey: "client_id", Columns: []string{"name"}}
	clientContact = Join{As: "client", Table: TableClients, LocalKey: "client_id", Columns: []string{"name", "phone"}}
	clientBilling = Join{As: "client", Table: TableClients, LocalKey: "client_id", Columns: []string{"name", "email"}}
	vehicleLabel  = Join{As: "vehicle", Table: TableVehicles, LocalKey: "vehicle_id", Columns: []string{"make", "model", "license_plate"}}

	lineItemColumns = []string{"description", "quantity", "unit_price", "discount_percent", "tax_rate", "subtotal", "total", "sort_order"}
)

// GarageTables returns the definitions of every garage table.
func GarageTables() []TableDef {
	return []TableDef{
		{
			Name:      TableClients,
			Columns:   withTimestamps("id", "name", "email", "phone", "address", "city", "postal_code", "status", "total_spent", "last_visit", "notes"),
			Writable:  []string{"name", "email", "phone", "address", "city", "postal_code", "status", "total_spent", "last_visit", "notes"},
			CreatedAt: true,
			UpdatedAt: true,
		},
		{
			Name:      TableVehicles,
			Columns:   withTimestamps("id", "client_id", "make", "model", "year", "license_plate", "vin", "color", "mileage", "status", "last_service", "next_service", "notes"),
			Writable:  []string{"client_id", "make", "model", "year", "license_plate", "vin", "color", "mileage", "status", "last_service", "next_service", "notes"},
			Joins:     []Join{clientContact},
			CreatedAt: true,
			UpdatedAt: true,
		},
		{
			Name:      TableAppointments,
			Columns:   withTimestamps("id", "client_id", "vehicle_id", "title", "description", "date", "start_time", "end_time", "status", "notes"),
			Writable:  []string{"client_id", "vehicle_id", "title", "description", "date", "start_time", "end_time", "status", "notes"},
			Joins:     []Join{clientName, vehicleLabel},
			CreatedAt: true,
			UpdatedAt: true,
		},
		{
			Name:      TableInterventions,
			Columns:   withTimestamps("id", "vehicle_id", "client_id", "type", "description", "date", "duration", "cost", "status", "technician", "parts", "notes"),
			Writable:  []string{"vehicle_id", "client_id", "type", "description", "date", "duration", "cost", "status", "technician", "parts", "notes"},
			JSON:      []string{"parts"},
			Joins:     []Join{clientName, vehicleLabel},
			CreatedAt: true,
			UpdatedAt: true,
		},
		{
			Name: TableInvoices,
			Columns: withTimestamps("id", "client_id", "invoice_number", "date", "due_date", "subtotal", "tax_amount", "tax_rate",
				"discount_amount", "amount", "paid_amount", "status", "description", "notes", "terms"),
			Writable: []string{"client_id", "invoice_number", "date", "due_date", "subtotal", "tax_amount", "tax_rate",
				"discount_amount", "amount", "paid_amount", "status", "description", "notes", "terms"},
			Joins:     []Join{clientBilling},
			CreatedAt: true,
			UpdatedAt: true,
		},
		{
			Name:      TableInvoiceItems,
			Columns:   append(append([]string{"id", "invoice_id"}, lineItemColumns...), "created_at"),
			Writable:  append([]string{"invoice_id"}, lineItemColumns...),
			CreatedAt: true,
		},
		{
			Name: TableQuotes,
			Columns: withTimestamps("id", "client_id", "quote_number", "date", "expiry_date", "subtotal", "tax_amount", "tax_rate",
				"discount_amount", "total_amount", "status", "description", "notes", "terms"),
			Writable: []string{"client_id", "quote_number", "date", "expiry_date", "subtotal", "tax_amount", "tax_rate",
				"discount_amount", "total_amount", "status", "description", "notes", "terms"},
			Joins:     []Join{clientBilling},
			CreatedAt: true,
			UpdatedAt: true,
		},
		{
			Name:      TableQuoteItems,
			Columns:   append(append([]string{"id", "quote_id"}, lineItemColumns...), "created_at"),
			Writable:  append([]string{"quote_id"}, lineItemColumns...),
			CreatedAt: true,
		},
	}
}

func withTimestamps(columns ...string) []string {
	return append(columns, "created_at", "updated_at")
}
