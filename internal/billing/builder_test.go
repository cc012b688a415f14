// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package billing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/mock"
	"github.com/MKhiriev/go-garage/internal/pricing"
	"github.com/MKhiriev/go-garage/internal/resource"
	"github.com/MKhiriev/go-garage/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// memInvoices: простое хранилище счетов в памяти
type memInvoices struct {
	mu   sync.Mutex
	rows []models.InvoiceView
	next int
}

func (m *memInvoices) FetchAll(_ context.Context, _ []models.Order) ([]models.InvoiceView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.rows), nil
}

func (m *memInvoices) InsertOne(_ context.Context, in models.InvoiceInsert) (models.InvoiceView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	row := models.InvoiceView{Row: models.Invoice{
		ID:             fmt.Sprintf("inv-%d", m.next),
		ClientID:       in.ClientID,
		InvoiceNumber:  in.InvoiceNumber,
		Date:           in.Date,
		DueDate:        in.DueDate,
		Subtotal:       in.Subtotal,
		TaxAmount:      in.TaxAmount,
		TaxRate:        in.TaxRate,
		DiscountAmount: in.DiscountAmount,
		Amount:         in.Amount,
		PaidAmount:     in.PaidAmount,
		Status:         in.Status,
		Terms:          in.Terms,
		CreatedAt:      time.Now(),
	}}
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memInvoices) UpdateOne(context.Context, string, models.InvoicePatch) (models.InvoiceView, error) {
	return models.InvoiceView{}, errors.New("not supported")
}

func (m *memInvoices) DeleteOne(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.rows)
	m.rows = slices.DeleteFunc(m.rows, func(r models.InvoiceView) bool { return r.RecordID() == id })
	if len(m.rows) == before {
		return errors.New("not found")
	}
	return nil
}

func threeItems() []pricing.EditableLineItem {
	return []pricing.EditableLineItem{
		{Description: "Plaquettes de frein", Quantity: d("2"), UnitPrice: d("100"), DiscountPercent: d("10"), TaxRate: d("20")},
		{Description: "Main d'oeuvre", Quantity: d("1.5"), UnitPrice: d("60"), TaxRate: d("20")},
		{Description: "Liquide de frein", Quantity: d("1"), UnitPrice: d("12.5"), TaxRate: d("5.5")},
	}
}

func testDraft() models.InvoiceDraft {
	return NewInvoiceDraft("client-1", time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC))
}

func newInvoiceResource(store resource.Store[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch]) *resource.Resource[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch] {
	return resource.New[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch](store, resource.Config[models.InvoiceView]{
		Labels: resource.Labels{Singular: "Invoice", Plural: "invoices"},
	}, logger.Nop())
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestInvoiceBuilder_Submit_WritesDocumentThenItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	docs := mock.NewMockDocumentWriter[models.InvoiceView, models.InvoiceInsert](ctrl)
	items := mock.NewMockItemWriter[models.InvoiceItemInsert](ctrl)
	b := NewInvoiceBuilder(docs, items, logger.Nop())

	var written models.InvoiceInsert
	gomock.InOrder(
		docs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in models.InvoiceInsert) (models.InvoiceView, error) {
				written = in
				return models.InvoiceView{Row: models.Invoice{ID: "inv-42", Amount: in.Amount}}, nil
			}),
		items.EXPECT().InsertMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []models.InvoiceItemInsert) error {
				require.Len(t, rows, 3)
				for i, row := range rows {
					assert.Equal(t, "inv-42", row.InvoiceID)
					assert.Equal(t, i, row.SortOrder)
				}
				assert.True(t, d("180").Equal(rows[0].Subtotal))
				assert.True(t, d("216").Equal(rows[0].Total))
				return nil
			}),
	)

	created, err := b.Submit(context.Background(), testDraft(), threeItems())
	require.NoError(t, err)

	// 180 + 90 + 12.5 = 282.5 ; 36 + 18 + 0.6875 = 54.6875
	assert.True(t, d("282.5").Equal(written.Subtotal), written.Subtotal.String())
	assert.True(t, d("54.6875").Equal(written.TaxAmount), written.TaxAmount.String())
	assert.True(t, d("337.1875").Equal(written.Amount), written.Amount.String())
	assert.True(t, written.PaidAmount.IsZero())
	assert.True(t, written.DiscountAmount.IsZero())
	assert.Equal(t, models.InvoiceStatusPending, written.Status)

	assert.Equal(t, "inv-42", created.Document.RecordID())
	assert.Len(t, created.Items, 3)
	assert.True(t, created.Totals.Total.Equal(written.Amount))
}

func TestInvoiceBuilder_Submit_InvalidInputWritesNothing(t *testing.T) {
	tests := []struct {
		name  string
		draft func() models.InvoiceDraft
		items func() []pricing.EditableLineItem
	}{
		{
			name:  "no items",
			draft: testDraft,
			items: func() []pricing.EditableLineItem { return nil },
		},
		{
			name:  "item without description",
			draft: testDraft,
			items: func() []pricing.EditableLineItem {
				items := threeItems()
				items[1].Description = ""
				return items
			},
		},
		{
			name:  "discount over 100",
			draft: testDraft,
			items: func() []pricing.EditableLineItem {
				items := threeItems()
				items[0].DiscountPercent = d("150")
				return items
			},
		},
		{
			name: "draft without client",
			draft: func() models.InvoiceDraft {
				draft := testDraft()
				draft.ClientID = ""
				return draft
			},
			items: threeItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			docs := mock.NewMockDocumentWriter[models.InvoiceView, models.InvoiceInsert](ctrl)
			items := mock.NewMockItemWriter[models.InvoiceItemInsert](ctrl)
			b := NewInvoiceBuilder(docs, items, logger.Nop())

			_, err := b.Submit(context.Background(), tt.draft(), tt.items())

			assert.ErrorIs(t, err, ErrSubmitFailed)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.NotErrorIs(t, err, ErrLineItemsNotSaved)
		})
	}
}

func TestInvoiceBuilder_Submit_DocumentWriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	docs := mock.NewMockDocumentWriter[models.InvoiceView, models.InvoiceInsert](ctrl)
	items := mock.NewMockItemWriter[models.InvoiceItemInsert](ctrl)
	b := NewInvoiceBuilder(docs, items, logger.Nop())

	remoteErr := errors.New("service unavailable")
	docs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.InvoiceView{}, remoteErr)

	_, err := b.Submit(context.Background(), testDraft(), threeItems())

	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.ErrorIs(t, err, remoteErr)
	assert.NotErrorIs(t, err, ErrLineItemsNotSaved)
}

func TestInvoiceBuilder_Submit_ItemsFailLeavesDocumentVisibleAfterRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := &memInvoices{}
	invoices := newInvoiceResource(store)
	items := mock.NewMockItemWriter[models.InvoiceItemInsert](ctrl)
	b := NewInvoiceBuilder(invoices, items, logger.Nop())

	itemsErr := errors.New("insert into invoice_items: connection reset")
	items.EXPECT().InsertMany(gomock.Any(), gomock.Len(3)).Return(itemsErr)

	created, err := b.Submit(context.Background(), testDraft(), threeItems())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.ErrorIs(t, err, ErrLineItemsNotSaved)
	assert.ErrorIs(t, err, itemsErr)
	assert.Equal(t, "inv-1", created.Document.RecordID())

	// the cache already holds the orphaned document
	require.Len(t, invoices.List(), 1)

	fresh := newInvoiceResource(store)
	require.NoError(t, fresh.Refresh(context.Background()))
	list := fresh.List()
	require.Len(t, list, 1)
	assert.Equal(t, created.Document.RecordID(), list[0].RecordID())
	assert.True(t, d("337.1875").Equal(list[0].Row.Amount))
}

func TestInvoiceBuilder_Submit_CompensationRemovesDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := &memInvoices{}
	invoices := newInvoiceResource(store)
	items := mock.NewMockItemWriter[models.InvoiceItemInsert](ctrl)
	b := NewInvoiceBuilder(invoices, items, logger.Nop(), WithCompensation())

	items.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	_, err := b.Submit(context.Background(), testDraft(), threeItems())

	assert.ErrorIs(t, err, ErrLineItemsNotSaved)
	assert.ErrorIs(t, err, ErrDocumentRemoved)
	assert.Empty(t, invoices.List())

	require.NoError(t, invoices.Refresh(context.Background()))
	assert.Empty(t, invoices.List())
}

func TestInvoiceBuilder_Submit_CompensationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	docs := mock.NewMockDocumentWriter[models.InvoiceView, models.InvoiceInsert](ctrl)
	items := mock.NewMockItemWriter[models.InvoiceItemInsert](ctrl)
	b := NewInvoiceBuilder(docs, items, logger.Nop(), WithCompensation())

	docs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.InvoiceView{Row: models.Invoice{ID: "inv-9"}}, nil)
	items.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
	docs.EXPECT().Remove(gomock.Any(), "inv-9").Return(errors.New("forbidden"))

	_, err := b.Submit(context.Background(), testDraft(), threeItems())

	assert.ErrorIs(t, err, ErrLineItemsNotSaved)
	assert.ErrorIs(t, err, ErrCompensationFailed)
	assert.NotErrorIs(t, err, ErrDocumentRemoved)
}

func TestQuoteBuilder_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	docs := mock.NewMockDocumentWriter[models.QuoteView, models.QuoteInsert](ctrl)
	items := mock.NewMockItemWriter[models.QuoteItemInsert](ctrl)
	b := NewQuoteBuilder(docs, items, logger.Nop())

	draft := NewQuoteDraft("client-1", time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC))
	docs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.QuoteInsert) (models.QuoteView, error) {
			assert.Equal(t, draft.QuoteNumber, in.QuoteNumber)
			assert.True(t, d("216").Equal(in.TotalAmount))
			assert.True(t, in.DiscountAmount.IsZero())
			return models.QuoteView{Row: models.Quote{ID: "q-1"}}, nil
		})
	items.EXPECT().InsertMany(gomock.Any(), []models.QuoteItemInsert{{
		QuoteID: "q-1",
		LineItemValues: models.LineItemValues{
			Description:     "Pneus",
			Quantity:        d("2"),
			UnitPrice:       d("100"),
			DiscountPercent: d("10"),
			TaxRate:         d("20"),
			Subtotal:        pricing.PriceLineItem(pricing.EditableLineItem{Quantity: d("2"), UnitPrice: d("100"), DiscountPercent: d("10"), TaxRate: d("20")}).Subtotal,
			Total:           pricing.PriceLineItem(pricing.EditableLineItem{Quantity: d("2"), UnitPrice: d("100"), DiscountPercent: d("10"), TaxRate: d("20")}).Total,
			SortOrder:       0,
		},
	}}).Return(nil)

	created, err := b.Submit(context.Background(), draft, []pricing.EditableLineItem{
		{Description: "Pneus", Quantity: d("2"), UnitPrice: d("100"), DiscountPercent: d("10"), TaxRate: d("20")},
	})

	require.NoError(t, err)
	assert.Equal(t, "q-1", created.Document.RecordID())
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestNextNumber(t *testing.T) {
	now := time.UnixMilli(1767225600123)

	assert.Equal(t, "FAC-1767225600123", NextNumber(InvoicePrefix, now))
	assert.Equal(t, "DEV-1767225600123", NextNumber(QuotePrefix, now))
}

func TestNewInvoiceDraft(t *testing.T) {
	draft := testDraft()

	assert.Equal(t, "client-1", draft.ClientID)
	assert.Equal(t, "2026-05-10", draft.Date)
	require.NotNil(t, draft.DueDate)
	assert.Equal(t, "2026-06-09", *draft.DueDate)
	assert.Equal(t, models.InvoiceStatusPending, draft.Status)
	require.NotNil(t, draft.Terms)
	assert.Equal(t, DefaultTerms, *draft.Terms)
	require.NotNil(t, draft.TaxRate)
	assert.True(t, draft.TaxRate.Equal(DefaultTaxRate))
	assert.Regexp(t, `^FAC-\d+$`, draft.InvoiceNumber)
}

func TestNewLineItem(t *testing.T) {
	item := NewLineItem("Contrôle technique")

	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, item.UnitPrice.IsZero())
	assert.True(t, item.TaxRate.Equal(DefaultTaxRate))
}
