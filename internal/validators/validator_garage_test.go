// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-garage/internal/pricing"
	"github.com/MKhiriev/go-garage/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestValidator() *GarageValidator {
	return &GarageValidator{now: func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }}
}

func validItem() pricing.EditableLineItem {
	return pricing.EditableLineItem{
		Description:     "Vidange",
		Quantity:        dec("1"),
		UnitPrice:       dec("89.90"),
		DiscountPercent: dec("0"),
		TaxRate:         dec("20"),
	}
}

func validInvoiceDraft() models.InvoiceDraft {
	return models.InvoiceDraft{
		ClientID:      "c1",
		InvoiceNumber: "FAC-1700000000000",
		Date:          "2026-05-10",
		DueDate:       ptr("2026-06-09"),
		Status:        models.InvoiceStatusPending,
		TaxRate:       ptr(dec("20")),
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewGarageValidator(t *testing.T) {
	require.NotNil(t, NewGarageValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Line items
// ---------------------------------------------------------------------------

func TestValidate_LineItem(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*pricing.EditableLineItem)
		wantErr error
	}{
		{name: "valid", mutate: func(*pricing.EditableLineItem) {}},
		{name: "blank description", mutate: func(i *pricing.EditableLineItem) { i.Description = "  " }, wantErr: ErrEmptyDescription},
		{name: "negative quantity", mutate: func(i *pricing.EditableLineItem) { i.Quantity = dec("-1") }, wantErr: ErrNegativeQuantity},
		{name: "negative price", mutate: func(i *pricing.EditableLineItem) { i.UnitPrice = dec("-0.01") }, wantErr: ErrNegativePrice},
		{name: "discount above 100", mutate: func(i *pricing.EditableLineItem) { i.DiscountPercent = dec("100.5") }, wantErr: ErrInvalidPercent},
		{name: "negative tax", mutate: func(i *pricing.EditableLineItem) { i.TaxRate = dec("-5") }, wantErr: ErrInvalidPercent},
		{name: "zero quantity is allowed", mutate: func(i *pricing.EditableLineItem) { i.Quantity = decimal.Zero }},
		{name: "full discount is allowed", mutate: func(i *pricing.EditableLineItem) { i.DiscountPercent = dec("100") }},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)

			err := v.Validate(context.Background(), item)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_LineItemFields(t *testing.T) {
	v := newTestValidator()
	item := validItem()
	item.Description = ""

	assert.NoError(t, v.Validate(context.Background(), item, FieldQuantity, FieldUnitPrice))
	assert.ErrorIs(t, v.Validate(context.Background(), item, FieldDescription), ErrEmptyDescription)
	assert.ErrorIs(t, v.Validate(context.Background(), item, "color"), ErrUnknownField)
}

func TestValidate_LineItems(t *testing.T) {
	v := newTestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), []pricing.EditableLineItem{}), ErrNoLineItems)

	bad := validItem()
	bad.Quantity = dec("-2")
	err := v.Validate(context.Background(), []pricing.EditableLineItem{validItem(), bad})
	assert.ErrorIs(t, err, ErrNegativeQuantity)
	assert.Contains(t, err.Error(), "index 1")

	assert.NoError(t, v.Validate(context.Background(), []pricing.EditableLineItem{validItem(), validItem()}))
}

// ---------------------------------------------------------------------------
// Drafts
// ---------------------------------------------------------------------------

func TestValidate_InvoiceDraft(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.InvoiceDraft)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.InvoiceDraft) {}},
		{name: "missing client", mutate: func(d *models.InvoiceDraft) { d.ClientID = "" }, wantErr: ErrEmptyClientID},
		{name: "missing number", mutate: func(d *models.InvoiceDraft) { d.InvoiceNumber = "" }, wantErr: ErrEmptyNumber},
		{name: "missing date", mutate: func(d *models.InvoiceDraft) { d.Date = "" }, wantErr: ErrInvalidDate},
		{name: "bad due date", mutate: func(d *models.InvoiceDraft) { d.DueDate = ptr("09/06/2026") }, wantErr: ErrInvalidDate},
		{name: "unknown status", mutate: func(d *models.InvoiceDraft) { d.Status = "archived" }, wantErr: ErrInvalidStatus},
		{name: "tax rate above 100", mutate: func(d *models.InvoiceDraft) { d.TaxRate = ptr(dec("120")) }, wantErr: ErrInvalidPercent},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validInvoiceDraft()
			tt.mutate(&draft)

			err := v.Validate(context.Background(), &draft)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_QuoteDraft(t *testing.T) {
	v := newTestValidator()
	draft := models.QuoteDraft{ClientID: "c1", QuoteNumber: "DEV-1", Date: "2026-05-10", TaxRate: dec("20")}

	assert.NoError(t, v.Validate(context.Background(), draft))

	draft.Status = models.QuoteStatus("paid")
	assert.ErrorIs(t, v.Validate(context.Background(), draft), ErrInvalidStatus)
}

// ---------------------------------------------------------------------------
// Inserts and patches
// ---------------------------------------------------------------------------

func TestValidate_Inserts(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr error
	}{
		{name: "client ok", value: models.ClientInsert{Name: "Jean Dupont"}},
		{name: "client without name", value: models.ClientInsert{Name: " "}, wantErr: ErrEmptyName},
		{
			name:  "vehicle ok",
			value: models.VehicleInsert{ClientID: "c1", Make: "Renault", Model: "Clio", Year: 2019, LicensePlate: "AB-123-CD"},
		},
		{
			name:    "vehicle from the future",
			value:   models.VehicleInsert{ClientID: "c1", Make: "Renault", Model: "Clio", Year: 2031, LicensePlate: "AB-123-CD"},
			wantErr: ErrInvalidYear,
		},
		{
			name:    "vehicle without plate",
			value:   models.VehicleInsert{ClientID: "c1", Make: "Renault", Model: "Clio", Year: 2019},
			wantErr: ErrEmptyLicensePlate,
		},
		{
			name:  "appointment ok",
			value: models.AppointmentInsert{ClientID: "c1", Title: "Révision", Date: "2026-05-12", StartTime: "09:00", EndTime: "10:30"},
		},
		{
			name:    "appointment ending before start",
			value:   models.AppointmentInsert{ClientID: "c1", Title: "Révision", Date: "2026-05-12", StartTime: "11:00", EndTime: "10:30"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "appointment bad time",
			value:   models.AppointmentInsert{ClientID: "c1", Title: "Révision", Date: "2026-05-12", StartTime: "9h", EndTime: "10:30"},
			wantErr: ErrInvalidTime,
		},
		{
			name: "intervention ok",
			value: models.InterventionInsert{
				VehicleID: "v1", ClientID: "c1", Type: "Freins", Date: "2026-05-12", Duration: 90, Cost: dec("240"),
				Parts: []models.Part{{Name: "Disques", Quantity: dec("2"), UnitPrice: dec("45")}},
			},
		},
		{
			name: "intervention with nameless part",
			value: models.InterventionInsert{
				VehicleID: "v1", ClientID: "c1", Type: "Freins", Date: "2026-05-12",
				Parts: []models.Part{{Quantity: dec("2")}},
			},
			wantErr: ErrEmptyName,
		},
		{
			name: "invoice with negative paid amount",
			value: models.InvoiceInsert{
				ClientID: "c1", InvoiceNumber: "FAC-1", Date: "2026-05-12", PaidAmount: dec("-1"),
			},
			wantErr: ErrNegativeAmount,
		},
		{
			name:  "quote ok",
			value: models.QuoteInsert{ClientID: "c1", QuoteNumber: "DEV-1", Date: "2026-05-12", TaxRate: dec("20")},
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Patches(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr error
	}{
		{name: "empty client patch", value: models.ClientPatch{}, wantErr: ErrNoFieldsToUpdate},
		{name: "client status", value: models.ClientPatch{Status: ptr(models.ClientStatusInactive)}},
		{name: "client unknown status", value: models.ClientPatch{Status: ptr(models.ClientStatus("gone"))}, wantErr: ErrInvalidStatus},
		{name: "vehicle mileage", value: models.VehiclePatch{Mileage: ptr(150000)}},
		{name: "vehicle negative mileage", value: models.VehiclePatch{Mileage: ptr(-1)}, wantErr: ErrNegativeAmount},
		{name: "appointment single time", value: models.AppointmentPatch{StartTime: ptr("25:00")}, wantErr: ErrInvalidTime},
		{name: "appointment confirm", value: models.AppointmentPatch{Status: ptr(models.AppointmentStatusConfirmed)}},
		{name: "intervention parts", value: models.InterventionPatch{Parts: &[]models.Part{{Name: "Filtre", Quantity: dec("1")}}}},
		{name: "invoice paid", value: models.InvoicePatch{Status: ptr(models.InvoiceStatusPaid), PaidAmount: ptr(dec("216"))}},
		{name: "invoice bad due date", value: models.InvoicePatch{DueDate: ptr("soon")}, wantErr: ErrInvalidDate},
		{name: "quote accepted", value: models.QuotePatch{Status: ptr(models.QuoteStatusAccepted)}},
		{name: "empty quote patch", value: models.QuotePatch{}, wantErr: ErrNoFieldsToUpdate},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
