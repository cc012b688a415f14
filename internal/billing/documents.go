// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package billing

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/pricing"
	"github.com/MKhiriev/go-garage/models"
	"github.com/shopspring/decimal"
)

const (
	InvoicePrefix = "FAC"
	QuotePrefix   = "DEV"

	DefaultTerms       = "Paiement à 30 jours"
	DefaultPaymentDays = 30
)

// DefaultTaxRate is the rate offered for new documents and items, in percent.
var DefaultTaxRate = decimal.NewFromInt(20)

type (
	InvoiceBuilder = Builder[models.InvoiceDraft, models.InvoiceView, models.InvoiceInsert, models.InvoiceItemInsert]
	QuoteBuilder   = Builder[models.QuoteDraft, models.QuoteView, models.QuoteInsert, models.QuoteItemInsert]
)

// NewInvoiceBuilder returns a Builder writing invoices through docs and their
// lines through items.
func NewInvoiceBuilder(
	docs DocumentWriter[models.InvoiceView, models.InvoiceInsert],
	items ItemWriter[models.InvoiceItemInsert],
	log *logger.Logger,
	opts ...Option,
) *InvoiceBuilder {
	return newBuilder(docs, items, layout[models.InvoiceDraft, models.InvoiceInsert, models.InvoiceItemInsert]{
		name:     "invoice",
		document: invoiceDocument,
		item: func(parentID string, line pricing.PricedLineItem) models.InvoiceItemInsert {
			return models.InvoiceItemInsert{InvoiceID: parentID, LineItemValues: lineValues(line)}
		},
	}, log, opts...)
}

// NewQuoteBuilder returns a Builder writing quotes through docs and their
// lines through items.
func NewQuoteBuilder(
	docs DocumentWriter[models.QuoteView, models.QuoteInsert],
	items ItemWriter[models.QuoteItemInsert],
	log *logger.Logger,
	opts ...Option,
) *QuoteBuilder {
	return newBuilder(docs, items, layout[models.QuoteDraft, models.QuoteInsert, models.QuoteItemInsert]{
		name:     "quote",
		document: quoteDocument,
		item: func(parentID string, line pricing.PricedLineItem) models.QuoteItemInsert {
			return models.QuoteItemInsert{QuoteID: parentID, LineItemValues: lineValues(line)}
		},
	}, log, opts...)
}

func invoiceDocument(d models.InvoiceDraft, totals pricing.Totals) models.InvoiceInsert {
	return models.InvoiceInsert{
		ClientID:       d.ClientID,
		InvoiceNumber:  d.InvoiceNumber,
		Date:           d.Date,
		DueDate:        d.DueDate,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		TaxRate:        d.TaxRate,
		DiscountAmount: decimal.Zero,
		Amount:         totals.Total,
		PaidAmount:     decimal.Zero,
		Status:         d.Status,
		Description:    d.Description,
		Notes:          d.Notes,
		Terms:          d.Terms,
	}
}

func quoteDocument(d models.QuoteDraft, totals pricing.Totals) models.QuoteInsert {
	return models.QuoteInsert{
		ClientID:       d.ClientID,
		QuoteNumber:    d.QuoteNumber,
		Date:           d.Date,
		ExpiryDate:     d.ExpiryDate,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		TaxRate:        d.TaxRate,
		DiscountAmount: decimal.Zero,
		TotalAmount:    totals.Total,
		Status:         d.Status,
		Description:    d.Description,
		Notes:          d.Notes,
		Terms:          d.Terms,
	}
}

func lineValues(line pricing.PricedLineItem) models.LineItemValues {
	return models.LineItemValues{
		Description:     line.Description,
		Quantity:        line.Quantity,
		UnitPrice:       line.UnitPrice,
		DiscountPercent: line.DiscountPercent,
		TaxRate:         line.TaxRate,
		Subtotal:        line.Subtotal,
		Total:           line.Total,
		SortOrder:       line.SortOrder,
	}
}

// NextNumber returns a document number such as "FAC-1767225600000".
func NextNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// NewInvoiceDraft returns a pending invoice for clientID dated now, with the
// usual payment terms and a due date DefaultPaymentDays later.
func NewInvoiceDraft(clientID string, now time.Time) models.InvoiceDraft {
	due := now.AddDate(0, 0, DefaultPaymentDays).Format(time.DateOnly)
	terms := DefaultTerms
	rate := DefaultTaxRate

	return models.InvoiceDraft{
		ClientID:      clientID,
		InvoiceNumber: NextNumber(InvoicePrefix, now),
		Date:          now.Format(time.DateOnly),
		DueDate:       &due,
		Status:        models.InvoiceStatusPending,
		TaxRate:       &rate,
		Terms:         &terms,
	}
}

// NewQuoteDraft returns a draft quote for clientID dated now.
func NewQuoteDraft(clientID string, now time.Time) models.QuoteDraft {
	return models.QuoteDraft{
		ClientID:    clientID,
		QuoteNumber: NextNumber(QuotePrefix, now),
		Date:        now.Format(time.DateOnly),
		Status:      models.QuoteStatusDraft,
		TaxRate:     DefaultTaxRate,
	}
}

// NewLineItem returns the blank line a form starts with: one unit at the
// default tax rate.
func NewLineItem(description string) pricing.EditableLineItem {
	return pricing.EditableLineItem{
		Description: description,
		Quantity:    decimal.NewFromInt(1),
		TaxRate:     DefaultTaxRate,
	}
}
