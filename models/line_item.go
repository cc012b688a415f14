// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemValues are the persisted columns shared by invoice and quote items.
// Subtotal and Total are derived by the pricing engine and never edited directly.
type LineItemValues struct {
	Description string `json:"description"`

	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`

	// DiscountPercent and TaxRate are percentages in [0, 100].
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRate         decimal.Decimal `json:"tax_rate"`

	// Subtotal is the amount after discount and before tax.
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`

	// SortOrder is the zero-based position of the item in its document.
	SortOrder int `json:"sort_order"`
}

// InvoiceItem is a persisted invoice line.
type InvoiceItem struct {
	ID        string `json:"id"`
	InvoiceID string `json:"invoice_id"`
	LineItemValues
	CreatedAt time.Time `json:"created_at"`
}

// RecordID implements Record.
func (i InvoiceItem) RecordID() string { return i.ID }

// InvoiceItemInsert is one row of the bulk write following an invoice write.
type InvoiceItemInsert struct {
	InvoiceID string `json:"invoice_id"`
	LineItemValues
}

// QuoteItem is a persisted quote line.
type QuoteItem struct {
	ID      string `json:"id"`
	QuoteID string `json:"quote_id"`
	LineItemValues
	CreatedAt time.Time `json:"created_at"`
}

// RecordID implements Record.
func (q QuoteItem) RecordID() string { return q.ID }

// QuoteItemInsert is one row of the bulk write following a quote write.
type QuoteItemInsert struct {
	QuoteID string `json:"quote_id"`
	LineItemValues
}

// LineItemPatch is a partial update of an invoice or quote line.
// Items are normally rewritten with their document; the patch exists for
// description or ordering fixes.
type LineItemPatch struct {
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}
