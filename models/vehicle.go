// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VehicleStatus is the availability of a vehicle.
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusInactive    VehicleStatus = "inactive"
)

// Vehicle is a car owned by a client.
type Vehicle struct {
	ID string `json:"id"`

	// ClientID references the owning client.
	ClientID string `json:"client_id"`

	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	LicensePlate string  `json:"license_plate"`
	VIN          *string `json:"vin"`
	Color        *string `json:"color"`

	// Mileage is the odometer reading in kilometers.
	Mileage *int `json:"mileage"`

	Status VehicleStatus `json:"status"`

	// LastService and NextService are "YYYY-MM-DD" dates.
	LastService *string `json:"last_service"`
	NextService *string `json:"next_service"`

	Notes *string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID implements Record.
func (v Vehicle) RecordID() string { return v.ID }

// VehicleInsert is the payload for registering a vehicle.
type VehicleInsert struct {
	ClientID     string        `json:"client_id"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	LicensePlate string        `json:"license_plate"`
	VIN          *string       `json:"vin,omitempty"`
	Color        *string       `json:"color,omitempty"`
	Mileage      *int          `json:"mileage,omitempty"`
	Status       VehicleStatus `json:"status,omitempty"`
	LastService  *string       `json:"last_service,omitempty"`
	NextService  *string       `json:"next_service,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
}

// VehiclePatch is a partial update of a vehicle.
type VehiclePatch struct {
	ClientID     *string        `json:"client_id,omitempty"`
	Make         *string        `json:"make,omitempty"`
	Model        *string        `json:"model,omitempty"`
	Year         *int           `json:"year,omitempty"`
	LicensePlate *string        `json:"license_plate,omitempty"`
	VIN          *string        `json:"vin,omitempty"`
	Color        *string        `json:"color,omitempty"`
	Mileage      *int           `json:"mileage,omitempty"`
	Status       *VehicleStatus `json:"status,omitempty"`
	LastService  *string        `json:"last_service,omitempty"`
	NextService  *string        `json:"next_service,omitempty"`
	Notes        *string        `json:"notes,omitempty"`
}
