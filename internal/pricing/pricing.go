// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pricing turns editable line items into priced lines and document totals.
//
// All functions are pure. Amounts are never rounded or clamped here: range
// checks belong to the caller and rounding only happens for display.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EditableLineItem is a line as entered by a user.
type EditableLineItem struct {
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	SortOrder       int             `json:"sort_order"`
}

// PricedLineItem is an EditableLineItem with its derived amounts.
type PricedLineItem struct {
	EditableLineItem

	// Gross is quantity times unit price, before discount.
	Gross decimal.Decimal `json:"gross"`

	DiscountAmount decimal.Decimal `json:"discount_amount"`

	// Subtotal is Gross minus DiscountAmount. This is the value persisted as
	// the item's subtotal.
	Subtotal decimal.Decimal `json:"subtotal"`

	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// Totals are the document-level sums over priced lines.
type Totals struct {
	// Subtotal is post-discount and pre-tax.
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// PriceLineItem derives the amounts of a single line:
//
//	gross    = quantity * unit_price
//	discount = gross * discount_percent / 100
//	subtotal = gross - discount
//	tax      = subtotal * tax_rate / 100
//	total    = subtotal + tax
func PriceLineItem(item EditableLineItem) PricedLineItem {
	gross := item.Quantity.Mul(item.UnitPrice)
	discount := gross.Mul(item.DiscountPercent).Div(hundred)
	net := gross.Sub(discount)
	tax := net.Mul(item.TaxRate).Div(hundred)

	return PricedLineItem{
		EditableLineItem: item,
		Gross:            gross,
		DiscountAmount:   discount,
		Subtotal:         net,
		TaxAmount:        tax,
		Total:            net.Add(tax),
	}
}

// PriceLineItems prices every line and sets its SortOrder to its position.
func PriceLineItems(items []EditableLineItem) []PricedLineItem {
	priced := make([]PricedLineItem, 0, len(items))
	for i, item := range items {
		item.SortOrder = i
		priced = append(priced, PriceLineItem(item))
	}
	return priced
}

// Aggregate sums the priced lines. An empty list yields zero totals.
func Aggregate(items []PricedLineItem) Totals {
	var totals Totals
	for _, item := range items {
		totals.Subtotal = totals.Subtotal.Add(item.Subtotal)
		totals.TaxAmount = totals.TaxAmount.Add(item.TaxAmount)
		totals.Total = totals.Total.Add(item.Total)
	}
	return totals
}

// DiscountTotal sums the discount amounts of the priced lines.
func DiscountTotal(items []PricedLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.DiscountAmount)
	}
	return sum
}

// ParseAmount reads a user-typed number. Empty or malformed input is zero;
// a decimal comma is accepted.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round rounds half away from zero for display.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}
