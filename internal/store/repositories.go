// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-garage/models"

// Repositories groups the typed view of every garage table.
type Repositories struct {
	Clients       *Repository[models.Client, models.ClientInsert, models.ClientPatch]
	Vehicles      *Repository[models.VehicleView, models.VehicleInsert, models.VehiclePatch]
	Appointments  *Repository[models.AppointmentView, models.AppointmentInsert, models.AppointmentPatch]
	Interventions *Repository[models.InterventionView, models.InterventionInsert, models.InterventionPatch]
	Invoices      *Repository[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch]
	InvoiceItems  *Repository[models.InvoiceItem, models.InvoiceItemInsert, models.LineItemPatch]
	Quotes        *Repository[models.QuoteView, models.QuoteInsert, models.QuotePatch]
	QuoteItems    *Repository[models.QuoteItem, models.QuoteItemInsert, models.LineItemPatch]
}

// NewRepositories builds the typed views over tables. tables may be the SQL
// [Tables] or any other [TableStore].
func NewRepositories(tables TableStore) *Repositories {
	return &Repositories{
		Clients:       NewRepository[models.Client, models.ClientInsert, models.ClientPatch](tables, TableClients),
		Vehicles:      NewRepository[models.VehicleView, models.VehicleInsert, models.VehiclePatch](tables, TableVehicles),
		Appointments:  NewRepository[models.AppointmentView, models.AppointmentInsert, models.AppointmentPatch](tables, TableAppointments),
		Interventions: NewRepository[models.InterventionView, models.InterventionInsert, models.InterventionPatch](tables, TableInterventions),
		Invoices:      NewRepository[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch](tables, TableInvoices),
		InvoiceItems:  NewRepository[models.InvoiceItem, models.InvoiceItemInsert, models.LineItemPatch](tables, TableInvoiceItems),
		Quotes:        NewRepository[models.QuoteView, models.QuoteInsert, models.QuotePatch](tables, TableQuotes),
		QuoteItems:    NewRepository[models.QuoteItem, models.QuoteItemInsert, models.LineItemPatch](tables, TableQuoteItems),
	}
}
