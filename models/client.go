// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientStatus is the lifecycle status of a client.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client is a customer of the garage.
type Client struct {
	// ID is the server-assigned identifier.
	ID string `json:"id"`

	// Name is the display name. Required.
	Name string `json:"name"`

	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`

	Status ClientStatus `json:"status"`

	// TotalSpent is maintained by the remote store; the client never computes it.
	TotalSpent *decimal.Decimal `json:"total_spent"`

	// LastVisit is the date of the latest visit, "YYYY-MM-DD".
	LastVisit *string `json:"last_visit"`

	Notes *string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID implements Record.
func (c Client) RecordID() string { return c.ID }

// ClientInsert is the payload for creating a client.
type ClientInsert struct {
	Name       string       `json:"name"`
	Email      *string      `json:"email,omitempty"`
	Phone      *string      `json:"phone,omitempty"`
	Address    *string      `json:"address,omitempty"`
	City       *string      `json:"city,omitempty"`
	PostalCode *string      `json:"postal_code,omitempty"`
	Status     ClientStatus `json:"status,omitempty"`
	Notes      *string      `json:"notes,omitempty"`
}

// ClientPatch is a partial update of a client. Nil fields are left unchanged.
type ClientPatch struct {
	Name       *string       `json:"name,omitempty"`
	Email      *string       `json:"email,omitempty"`
	Phone      *string       `json:"phone,omitempty"`
	Address    *string       `json:"address,omitempty"`
	City       *string       `json:"city,omitempty"`
	PostalCode *string       `json:"postal_code,omitempty"`
	Status     *ClientStatus `json:"status,omitempty"`
	LastVisit  *string       `json:"last_visit,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
}
