// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-garage/internal/billing"
	"github.com/MKhiriev/go-garage/internal/config"
	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/resource"
	"github.com/MKhiriev/go-garage/internal/validators"
	"github.com/MKhiriev/go-garage/models"
)

var itemOrder = []models.Order{models.Asc("sort_order")}

// Services is everything the client works with.
type Services struct {
	Resources *Resources
	Invoices  *billing.InvoiceBuilder
	Quotes    *billing.QuoteBuilder

	backend Backend
	logger  *logger.Logger
}

// NewServices wires resources and document builders over b. Submitted
// documents go through the invoice and quote resources, so they show up in
// those caches.
func NewServices(b Backend, cfg config.Billing, notifier resource.Notifier, log *logger.Logger) *Services {
	if log == nil {
		log = logger.Nop()
	}

	v := validators.NewGarageValidator()
	resources := NewResources(b, v, notifier, log)

	opts := []billing.Option{billing.WithValidator(v)}
	if cfg.Compensate {
		opts = append(opts, billing.WithCompensation())
	}

	return &Services{
		Resources: resources,
		Invoices:  billing.NewInvoiceBuilder(resources.Invoices, b.InvoiceItems, log, opts...),
		Quotes:    billing.NewQuoteBuilder(resources.Quotes, b.QuoteItems, log, opts...),
		backend:   b,
		logger:    log,
	}
}

// InvoiceItems returns the lines of an invoice in sort order.
func (s *Services) InvoiceItems(ctx context.Context, invoiceID string) ([]models.InvoiceItem, error) {
	items, err := s.backend.InvoiceItems.FetchWhere(ctx, map[string]string{"invoice_id": invoiceID}, itemOrder)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Services.InvoiceItems").Str("invoice_id", invoiceID).Send()
		return nil, fmt.Errorf("%w: %w", ErrFetchingItems, err)
	}
	return items, nil
}

// QuoteItems returns the lines of a quote in sort order.
func (s *Services) QuoteItems(ctx context.Context, quoteID string) ([]models.QuoteItem, error) {
	items, err := s.backend.QuoteItems.FetchWhere(ctx, map[string]string{"quote_id": quoteID}, itemOrder)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Services.QuoteItems").Str("quote_id", quoteID).Send()
		return nil, fmt.Errorf("%w: %w", ErrFetchingItems, err)
	}
	return items, nil
}

// Close releases the backend.
func (s *Services) Close() error {
	if s.backend.Close == nil {
		return nil
	}
	return s.backend.Close()
}
