// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the negotiation status of a quote.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Quote is an estimate sent to a client before the work is done.
// It mirrors Invoice without any payment tracking.
type Quote struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	QuoteNumber string `json:"quote_number"`

	// Date and ExpiryDate are "YYYY-MM-DD".
	Date       string  `json:"date"`
	ExpiryDate *string `json:"expiry_date"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`

	Status      QuoteStatus `json:"status"`
	Description *string     `json:"description"`
	Notes       *string     `json:"notes"`
	Terms       *string     `json:"terms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID implements Record.
func (q Quote) RecordID() string { return q.ID }

// QuoteInsert is the payload for writing a quote.
type QuoteInsert struct {
	ClientID       string          `json:"client_id"`
	QuoteNumber    string          `json:"quote_number"`
	Date           string          `json:"date"`
	ExpiryDate     *string         `json:"expiry_date,omitempty"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         QuoteStatus     `json:"status,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	Terms          *string         `json:"terms,omitempty"`
}

// QuotePatch is a partial update of a quote.
type QuotePatch struct {
	ClientID    *string          `json:"client_id,omitempty"`
	QuoteNumber *string          `json:"quote_number,omitempty"`
	Date        *string          `json:"date,omitempty"`
	ExpiryDate  *string          `json:"expiry_date,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
	Status      *QuoteStatus     `json:"status,omitempty"`
	Description *string          `json:"description,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Terms       *string          `json:"terms,omitempty"`
}

// QuoteDraft is what a user fills in before the quote and its items are written.
type QuoteDraft struct {
	ClientID    string          `json:"client_id"`
	QuoteNumber string          `json:"quote_number"`
	Date        string          `json:"date"`
	ExpiryDate  *string         `json:"expiry_date,omitempty"`
	Status      QuoteStatus     `json:"status,omitempty"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Description *string         `json:"description,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	Terms       *string         `json:"terms,omitempty"`
}
