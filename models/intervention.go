// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterventionStatus is the progress of a workshop job.
type InterventionStatus string

const (
	InterventionStatusScheduled  InterventionStatus = "scheduled"
	InterventionStatusInProgress InterventionStatus = "in_progress"
	InterventionStatusCompleted  InterventionStatus = "completed"
	InterventionStatusCancelled  InterventionStatus = "cancelled"
)

// Part is a spare part consumed by an intervention.
type Part struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Intervention is a service job performed on a vehicle.
type Intervention struct {
	ID        string `json:"id"`
	VehicleID string `json:"vehicle_id"`
	ClientID  string `json:"client_id"`

	// Type is the kind of job, e.g. "oil change" or "brakes".
	Type        string  `json:"type"`
	Description *string `json:"description"`

	// Date is "YYYY-MM-DD".
	Date string `json:"date"`

	// Duration is the planned labour time in minutes.
	Duration int `json:"duration"`

	Cost       decimal.Decimal    `json:"cost"`
	Status     InterventionStatus `json:"status"`
	Technician *string            `json:"technician"`

	// Parts is stored as a JSON column by the remote store.
	Parts []Part `json:"parts"`

	Notes *string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID implements Record.
func (i Intervention) RecordID() string { return i.ID }

// InterventionInsert is the payload for planning an intervention.
type InterventionInsert struct {
	VehicleID   string             `json:"vehicle_id"`
	ClientID    string             `json:"client_id"`
	Type        string             `json:"type"`
	Description *string            `json:"description,omitempty"`
	Date        string             `json:"date"`
	Duration    int                `json:"duration"`
	Cost        decimal.Decimal    `json:"cost"`
	Status      InterventionStatus `json:"status,omitempty"`
	Technician  *string            `json:"technician,omitempty"`
	Parts       []Part             `json:"parts,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

// InterventionPatch is a partial update of an intervention.
// A non-nil Parts replaces the whole list.
type InterventionPatch struct {
	VehicleID   *string             `json:"vehicle_id,omitempty"`
	ClientID    *string             `json:"client_id,omitempty"`
	Type        *string             `json:"type,omitempty"`
	Description *string             `json:"description,omitempty"`
	Date        *string             `json:"date,omitempty"`
	Duration    *int                `json:"duration,omitempty"`
	Cost        *decimal.Decimal    `json:"cost,omitempty"`
	Status      *InterventionStatus `json:"status,omitempty"`
	Technician  *string             `json:"technician,omitempty"`
	Parts       *[]Part             `json:"parts,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}
