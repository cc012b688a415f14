// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "github.com/MKhiriev/go-garage/models"

// Select clauses embedding the joined snapshots each kind carries.
const (
	selectVehicles   = "*,client:clients(name,phone)"
	selectSchedule   = "*,client:clients(name),vehicle:vehicles(make,model,license_plate)"
	selectBilling    = "*,client:clients(name,email)"
	selectEverything = "*"
)

// Tables is every garage table over one connection.
type Tables struct {
	Clients       *Table[models.Client, models.ClientInsert, models.ClientPatch]
	Vehicles      *Table[models.VehicleView, models.VehicleInsert, models.VehiclePatch]
	Appointments  *Table[models.AppointmentView, models.AppointmentInsert, models.AppointmentPatch]
	Interventions *Table[models.InterventionView, models.InterventionInsert, models.InterventionPatch]
	Invoices      *Table[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch]
	InvoiceItems  *Table[models.InvoiceItem, models.InvoiceItemInsert, models.LineItemPatch]
	Quotes        *Table[models.QuoteView, models.QuoteInsert, models.QuotePatch]
	QuoteItems    *Table[models.QuoteItem, models.QuoteItemInsert, models.LineItemPatch]
}

// NewTables binds every garage table to conn.
func NewTables(conn *Connection) *Tables {
	return &Tables{
		Clients:       NewTable[models.Client, models.ClientInsert, models.ClientPatch](conn, models.TableClients, selectEverything),
		Vehicles:      NewTable[models.VehicleView, models.VehicleInsert, models.VehiclePatch](conn, models.TableVehicles, selectVehicles),
		Appointments:  NewTable[models.AppointmentView, models.AppointmentInsert, models.AppointmentPatch](conn, models.TableAppointments, selectSchedule),
		Interventions: NewTable[models.InterventionView, models.InterventionInsert, models.InterventionPatch](conn, models.TableInterventions, selectSchedule),
		Invoices:      NewTable[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch](conn, models.TableInvoices, selectBilling),
		InvoiceItems:  NewTable[models.InvoiceItem, models.InvoiceItemInsert, models.LineItemPatch](conn, models.TableInvoiceItems, selectEverything),
		Quotes:        NewTable[models.QuoteView, models.QuoteInsert, models.QuotePatch](conn, models.TableQuotes, selectBilling),
		QuoteItems:    NewTable[models.QuoteItem, models.QuoteItemInsert, models.LineItemPatch](conn, models.TableQuoteItems, selectEverything),
	}
}
