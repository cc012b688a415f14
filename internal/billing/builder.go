// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package billing writes a priced document (invoice or quote) together with
// its line items.
//
// Submit performs two remote writes: the document carrying the aggregated
// totals, then every line item in one bulk write tagged with the new document
// id. The writes are not atomic. When the items write fails the document stays
// persisted without items and Submit returns an error matching both
// ErrSubmitFailed and ErrLineItemsNotSaved; WithCompensation removes the
// orphaned document instead.
package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/pricing"
	"github.com/MKhiriev/go-garage/internal/validators"
	"github.com/MKhiriev/go-garage/models"
)

// DocumentWriter creates and removes documents. resource.Resource satisfies it,
// so a submitted document lands in the document cache like any other create.
type DocumentWriter[V models.Record, I any] interface {
	Create(ctx context.Context, payload I) (V, error)
	Remove(ctx context.Context, id string) error
}

//go:generate mockgen -source=builder.go -destination=../mock/billing_mock.go -package=mock

// ItemWriter stores line items in one bulk write.
type ItemWriter[R any] interface {
	InsertMany(ctx context.Context, rows []R) error
}

// Created is the outcome of a Submit.
type Created[V models.Record] struct {
	Document V
	Items    []pricing.PricedLineItem
	Totals   pricing.Totals
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	compensate bool
	validator  validators.Validator
}

// WithCompensation makes Submit remove the document when its line items
// could not be written.
func WithCompensation() Option {
	return func(o *options) { o.compensate = true }
}

// WithValidator replaces the default boundary validator.
func WithValidator(v validators.Validator) Option {
	return func(o *options) { o.validator = v }
}

// layout maps a draft and its priced lines onto the remote payloads of one
// document kind.
type layout[D any, I any, R any] struct {
	name     string
	document func(draft D, totals pricing.Totals) I
	item     func(parentID string, line pricing.PricedLineItem) R
}

// Builder submits documents of one kind. D is the draft, V the stored document,
// I its insert payload and R the line item insert payload.
type Builder[D any, V models.Record, I any, R any] struct {
	docs   DocumentWriter[V, I]
	items  ItemWriter[R]
	layout layout[D, I, R]
	opts   options
	logger *logger.Logger
}

func newBuilder[D any, V models.Record, I any, R any](
	docs DocumentWriter[V, I],
	items ItemWriter[R],
	l layout[D, I, R],
	log *logger.Logger,
	opts ...Option,
) *Builder[D, V, I, R] {
	o := options{validator: validators.NewGarageValidator()}
	for _, opt := range opts {
		opt(&o)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Builder[D, V, I, R]{
		docs:   docs,
		items:  items,
		layout: l,
		opts:   o,
		logger: log,
	}
}

// Submit validates the draft and items, prices them and writes the document
// followed by its line items.
//
// When the document write succeeds but the items write fails, the returned
// Created still carries the document so the caller can find it.
func (b *Builder[D, V, I, R]) Submit(ctx context.Context, draft D, items []pricing.EditableLineItem) (Created[V], error) {
	var out Created[V]

	if err := b.validate(ctx, draft, items); err != nil {
		return out, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	out.Items = pricing.PriceLineItems(items)
	out.Totals = pricing.Aggregate(out.Items)

	doc, err := b.docs.Create(ctx, b.layout.document(draft, out.Totals))
	if err != nil {
		b.logger.Err(err).
			Str("func", "Builder.Submit").
			Str("document", b.layout.name).
			Msg("error writing document")
		return out, fmt.Errorf("%w: %s: %w", ErrSubmitFailed, b.layout.name, err)
	}
	out.Document = doc

	rows := make([]R, 0, len(out.Items))
	for _, line := range out.Items {
		rows = append(rows, b.layout.item(doc.RecordID(), line))
	}

	if err = b.items.InsertMany(ctx, rows); err != nil {
		b.logger.Err(err).
			Str("func", "Builder.Submit").
			Str("document", b.layout.name).
			Str("id", doc.RecordID()).
			Int("items", len(rows)).
			Bool("compensate", b.opts.compensate).
			Msg("error writing line items, document persisted without items")

		err = fmt.Errorf("%w: %w: %w", ErrSubmitFailed, ErrLineItemsNotSaved, err)
		if b.opts.compensate {
			return out, errors.Join(err, b.compensate(ctx, doc.RecordID()))
		}
		return out, err
	}

	return out, nil
}

func (b *Builder[D, V, I, R]) compensate(ctx context.Context, id string) error {
	if err := b.docs.Remove(ctx, id); err != nil {
		b.logger.Err(err).
			Str("func", "Builder.compensate").
			Str("document", b.layout.name).
			Str("id", id).
			Msg("error removing document without items")
		return fmt.Errorf("%w: %w", ErrCompensationFailed, err)
	}

	b.logger.Info().
		Str("func", "Builder.compensate").
		Str("document", b.layout.name).
		Str("id", id).
		Msg("document without items removed")
	return ErrDocumentRemoved
}

func (b *Builder[D, V, I, R]) validate(ctx context.Context, draft D, items []pricing.EditableLineItem) error {
	if b.opts.validator == nil {
		return nil
	}
	if err := b.opts.validator.Validate(ctx, items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := b.opts.validator.Validate(ctx, draft); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
