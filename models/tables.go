// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Remote table names, shared by every store implementation.
const (
	TableClients       = "clients"
	TableVehicles      = "vehicles"
	TableAppointments  = "appointments"
	TableInterventions = "interventions"
	TableInvoices      = "invoices"
	TableInvoiceItems  = "invoice_items"
	TableQuotes        = "quotes"
	TableQuoteItems    = "quote_items"
)
