// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClientSnapshot is the read-only projection of a client joined onto another row.
// Only the columns requested by the joining select are populated.
type ClientSnapshot struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// VehicleSnapshot is the read-only projection of a vehicle joined onto another row.
type VehicleSnapshot struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

// OwnerJoins is what a vehicle carries about its owner.
type OwnerJoins struct {
	Client *ClientSnapshot `json:"client"`
}

// ScheduleJoins is what appointments and interventions carry about the client
// and the vehicle they concern.
type ScheduleJoins struct {
	Client  *ClientSnapshot  `json:"client"`
	Vehicle *VehicleSnapshot `json:"vehicle"`
}

// BillingJoins is what invoices and quotes carry about the billed client.
type BillingJoins struct {
	Client *ClientSnapshot `json:"client"`
}

func (j *OwnerJoins) drop(name string) {
	if name == "client" {
		j.Client = nil
	}
}

func (j *ScheduleJoins) drop(name string) {
	switch name {
	case "client":
		j.Client = nil
	case "vehicle":
		j.Vehicle = nil
	}
}

func (j *BillingJoins) drop(name string) {
	if name == "client" {
		j.Client = nil
	}
}

func (v Vehicle) joinKeys() map[string]string {
	return map[string]string{"client": v.ClientID}
}

func (a Appointment) joinKeys() map[string]string {
	vehicle := ""
	if a.VehicleID != nil {
		vehicle = *a.VehicleID
	}
	return map[string]string{"client": a.ClientID, "vehicle": vehicle}
}

func (i Intervention) joinKeys() map[string]string {
	return map[string]string{"client": i.ClientID, "vehicle": i.VehicleID}
}

func (i Invoice) joinKeys() map[string]string {
	return map[string]string{"client": i.ClientID}
}

func (q Quote) joinKeys() map[string]string {
	return map[string]string{"client": q.ClientID}
}

type (
	VehicleView      = WithJoined[Vehicle, OwnerJoins]
	AppointmentView  = WithJoined[Appointment, ScheduleJoins]
	InterventionView = WithJoined[Intervention, ScheduleJoins]
	InvoiceView      = WithJoined[Invoice, BillingJoins]
	QuoteView        = WithJoined[Quote, BillingJoins]
)
