// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment status of an invoice.
// Statuses are set by the caller; nothing transitions automatically.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice is a billing document. Its summary amounts are derived from its
// line items when the invoice is written and stored alongside them.
type Invoice struct {
	ID            string `json:"id"`
	ClientID      string `json:"client_id"`
	InvoiceNumber string `json:"invoice_number"`

	// Date and DueDate are "YYYY-MM-DD".
	Date    string  `json:"date"`
	DueDate *string `json:"due_date"`

	// Subtotal is the sum of the items' post-discount, pre-tax amounts.
	Subtotal decimal.Decimal `json:"subtotal"`

	// TaxAmount is the sum of the items' tax amounts.
	TaxAmount decimal.Decimal `json:"tax_amount"`

	// TaxRate is the default rate offered for new items, in percent.
	TaxRate *decimal.Decimal `json:"tax_rate"`

	DiscountAmount decimal.Decimal `json:"discount_amount"`

	// Amount is the document total, taxes included.
	Amount     decimal.Decimal `json:"amount"`
	PaidAmount decimal.Decimal `json:"paid_amount"`

	Status      InvoiceStatus `json:"status"`
	Description *string       `json:"description"`
	Notes       *string       `json:"notes"`
	Terms       *string       `json:"terms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID implements Record.
func (i Invoice) RecordID() string { return i.ID }

// InvoiceInsert is the payload for writing an invoice.
type InvoiceInsert struct {
	ClientID       string           `json:"client_id"`
	InvoiceNumber  string           `json:"invoice_number"`
	Date           string           `json:"date"`
	DueDate        *string          `json:"due_date,omitempty"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	TaxAmount      decimal.Decimal  `json:"tax_amount"`
	TaxRate        *decimal.Decimal `json:"tax_rate,omitempty"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	Amount         decimal.Decimal  `json:"amount"`
	PaidAmount     decimal.Decimal  `json:"paid_amount"`
	Status         InvoiceStatus    `json:"status,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	Terms          *string          `json:"terms,omitempty"`
}

// InvoicePatch is a partial update of an invoice. Summary amounts are not
// patchable: they follow the line items.
type InvoicePatch struct {
	ClientID      *string          `json:"client_id,omitempty"`
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
	Date          *string          `json:"date,omitempty"`
	DueDate       *string          `json:"due_date,omitempty"`
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`
	PaidAmount    *decimal.Decimal `json:"paid_amount,omitempty"`
	Status        *InvoiceStatus   `json:"status,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Terms         *string          `json:"terms,omitempty"`
}

// InvoiceDraft is what a user fills in before the invoice and its items are
// written together.
type InvoiceDraft struct {
	ClientID      string           `json:"client_id"`
	InvoiceNumber string           `json:"invoice_number"`
	Date          string           `json:"date"`
	DueDate       *string          `json:"due_date,omitempty"`
	Status        InvoiceStatus    `json:"status,omitempty"`
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Terms         *string          `json:"terms,omitempty"`
}
