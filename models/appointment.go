// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AppointmentStatus is the booking status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked slot in the workshop calendar.
type Appointment struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`

	// VehicleID is nil for appointments not tied to a vehicle yet.
	VehicleID *string `json:"vehicle_id"`

	Title       string  `json:"title"`
	Description *string `json:"description"`

	// Date is "YYYY-MM-DD"; StartTime and EndTime are "HH:MM".
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Status AppointmentStatus `json:"status"`
	Notes  *string           `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID implements Record.
func (a Appointment) RecordID() string { return a.ID }

// AppointmentInsert is the payload for booking an appointment.
type AppointmentInsert struct {
	ClientID    string            `json:"client_id"`
	VehicleID   *string           `json:"vehicle_id,omitempty"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Date        string            `json:"date"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	Status      AppointmentStatus `json:"status,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
}

// AppointmentPatch is a partial update of an appointment.
type AppointmentPatch struct {
	ClientID    *string            `json:"client_id,omitempty"`
	VehicleID   *string            `json:"vehicle_id,omitempty"`
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Date        *string            `json:"date,omitempty"`
	StartTime   *string            `json:"start_time,omitempty"`
	EndTime     *string            `json:"end_time,omitempty"`
	Status      *AppointmentStatus `json:"status,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}
