// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-garage/internal/pricing"
	"github.com/MKhiriev/go-garage/models"
	"github.com/shopspring/decimal"
)

const (
	FieldDescription     = "description"
	FieldQuantity        = "quantity"
	FieldUnitPrice       = "unit_price"
	FieldDiscountPercent = "discount_percent"
	FieldTaxRate         = "tax_rate"

	FieldClientID = "client_id"
	FieldNumber   = "number"
	FieldDate     = "date"
	FieldStatus   = "status"
)

const timeOfDay = "15:04"

var (
	hundred = decimal.NewFromInt(100)

	clientStatuses       = []models.ClientStatus{models.ClientStatusActive, models.ClientStatusInactive}
	vehicleStatuses      = []models.VehicleStatus{models.VehicleStatusActive, models.VehicleStatusMaintenance, models.VehicleStatusInactive}
	appointmentStatuses  = []models.AppointmentStatus{models.AppointmentStatusScheduled, models.AppointmentStatusConfirmed, models.AppointmentStatusCompleted, models.AppointmentStatusCancelled}
	interventionStatuses = []models.InterventionStatus{models.InterventionStatusScheduled, models.InterventionStatusInProgress, models.InterventionStatusCompleted, models.InterventionStatusCancelled}
	invoiceStatuses      = []models.InvoiceStatus{models.InvoiceStatusDraft, models.InvoiceStatusPending, models.InvoiceStatusPaid, models.InvoiceStatusOverdue, models.InvoiceStatusCancelled}
	quoteStatuses        = []models.QuoteStatus{models.QuoteStatusDraft, models.QuoteStatusSent, models.QuoteStatusAccepted, models.QuoteStatusRejected, models.QuoteStatusExpired}
)

// GarageValidator checks insert payloads, patches, drafts and editable line
// items before they reach a remote store.
type GarageValidator struct {
	now func() time.Time
}

func NewGarageValidator() Validator {
	return &GarageValidator{now: time.Now}
}

func (v *GarageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case pricing.EditableLineItem:
		return v.validateLineItem(value, fields...)
	case []pricing.EditableLineItem:
		return v.validateLineItems(value)

	case models.InvoiceDraft:
		return v.validateInvoiceDraft(value, fields...)
	case *models.InvoiceDraft:
		return v.validateInvoiceDraft(*value, fields...)
	case models.QuoteDraft:
		return v.validateQuoteDraft(value, fields...)
	case *models.QuoteDraft:
		return v.validateQuoteDraft(*value, fields...)

	case models.ClientInsert:
		return v.validateClientInsert(value)
	case models.ClientPatch:
		return v.validateClientPatch(value)
	case models.VehicleInsert:
		return v.validateVehicleInsert(value)
	case models.VehiclePatch:
		return v.validateVehiclePatch(value)
	case models.AppointmentInsert:
		return v.validateAppointmentInsert(value)
	case models.AppointmentPatch:
		return v.validateAppointmentPatch(value)
	case models.InterventionInsert:
		return v.validateInterventionInsert(value)
	case models.InterventionPatch:
		return v.validateInterventionPatch(value)
	case models.InvoiceInsert:
		return v.validateInvoiceInsert(value)
	case models.InvoicePatch:
		return v.validateInvoicePatch(value)
	case models.QuoteInsert:
		return v.validateQuoteInsert(value)
	case models.QuotePatch:
		return v.validateQuotePatch(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *GarageValidator) validateLineItem(item pricing.EditableLineItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription, FieldQuantity, FieldUnitPrice, FieldDiscountPercent, FieldTaxRate}
	}

	for _, f := range fields {
		switch f {
		case FieldDescription:
			if strings.TrimSpace(item.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldQuantity:
			if item.Quantity.IsNegative() {
				return ErrNegativeQuantity
			}
		case FieldUnitPrice:
			if item.UnitPrice.IsNegative() {
				return ErrNegativePrice
			}
		case FieldDiscountPercent:
			if !isPercent(item.DiscountPercent) {
				return fmt.Errorf("%w: discount", ErrInvalidPercent)
			}
		case FieldTaxRate:
			if !isPercent(item.TaxRate) {
				return fmt.Errorf("%w: tax rate", ErrInvalidPercent)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GarageValidator) validateLineItems(items []pricing.EditableLineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}
	for i, item := range items {
		if err := v.validateLineItem(item); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}
	return nil
}

func (v *GarageValidator) validateInvoiceDraft(draft models.InvoiceDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldNumber, FieldDate, FieldStatus, FieldTaxRate}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if draft.ClientID == "" {
				return ErrEmptyClientID
			}
		case FieldNumber:
			if strings.TrimSpace(draft.InvoiceNumber) == "" {
				return ErrEmptyNumber
			}
		case FieldDate:
			if err := checkDate(draft.Date); err != nil {
				return err
			}
			if err := checkOptionalDate(draft.DueDate); err != nil {
				return err
			}
		case FieldStatus:
			if draft.Status != "" && !slices.Contains(invoiceStatuses, draft.Status) {
				return ErrInvalidStatus
			}
		case FieldTaxRate:
			if draft.TaxRate != nil && !isPercent(*draft.TaxRate) {
				return ErrInvalidPercent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GarageValidator) validateQuoteDraft(draft models.QuoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldNumber, FieldDate, FieldStatus, FieldTaxRate}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if draft.ClientID == "" {
				return ErrEmptyClientID
			}
		case FieldNumber:
			if strings.TrimSpace(draft.QuoteNumber) == "" {
				return ErrEmptyNumber
			}
		case FieldDate:
			if err := checkDate(draft.Date); err != nil {
				return err
			}
			if err := checkOptionalDate(draft.ExpiryDate); err != nil {
				return err
			}
		case FieldStatus:
			if draft.Status != "" && !slices.Contains(quoteStatuses, draft.Status) {
				return ErrInvalidStatus
			}
		case FieldTaxRate:
			if !isPercent(draft.TaxRate) {
				return ErrInvalidPercent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GarageValidator) validateClientInsert(in models.ClientInsert) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyName
	}
	if in.Status != "" && !slices.Contains(clientStatuses, in.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func (v *GarageValidator) validateClientPatch(p models.ClientPatch) error {
	if isEmptyPatch(p) {
		return ErrNoFieldsToUpdate
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrEmptyName
	}
	if p.Status != nil && !slices.Contains(clientStatuses, *p.Status) {
		return ErrInvalidStatus
	}
	return checkOptionalDate(p.LastVisit)
}

func (v *GarageValidator) validateVehicleInsert(in models.VehicleInsert) error {
	switch {
	case in.ClientID == "":
		return ErrEmptyClientID
	case strings.TrimSpace(in.Make) == "":
		return ErrEmptyMake
	case strings.TrimSpace(in.Model) == "":
		return ErrEmptyModel
	case strings.TrimSpace(in.LicensePlate) == "":
		return ErrEmptyLicensePlate
	case in.Status != "" && !slices.Contains(vehicleStatuses, in.Status):
		return ErrInvalidStatus
	case in.Mileage != nil && *in.Mileage < 0:
		return ErrNegativeAmount
	}
	if err := v.checkYear(in.Year); err != nil {
		return err
	}
	if err := checkOptionalDate(in.LastService); err != nil {
		return err
	}
	return checkOptionalDate(in.NextService)
}

func (v *GarageValidator) validateVehiclePatch(p models.VehiclePatch) error {
	if isEmptyPatch(p) {
		return ErrNoFieldsToUpdate
	}
	switch {
	case p.ClientID != nil && *p.ClientID == "":
		return ErrEmptyClientID
	case p.Make != nil && strings.TrimSpace(*p.Make) == "":
		return ErrEmptyMake
	case p.Model != nil && strings.TrimSpace(*p.Model) == "":
		return ErrEmptyModel
	case p.LicensePlate != nil && strings.TrimSpace(*p.LicensePlate) == "":
		return ErrEmptyLicensePlate
	case p.Status != nil && !slices.Contains(vehicleStatuses, *p.Status):
		return ErrInvalidStatus
	case p.Mileage != nil && *p.Mileage < 0:
		return ErrNegativeAmount
	}
	if p.Year != nil {
		if err := v.checkYear(*p.Year); err != nil {
			return err
		}
	}
	if err := checkOptionalDate(p.LastService); err != nil {
		return err
	}
	return checkOptionalDate(p.NextService)
}

func (v *GarageValidator) validateAppointmentInsert(in models.AppointmentInsert) error {
	switch {
	case in.ClientID == "":
		return ErrEmptyClientID
	case strings.TrimSpace(in.Title) == "":
		return ErrEmptyTitle
	case in.Status != "" && !slices.Contains(appointmentStatuses, in.Status):
		return ErrInvalidStatus
	}
	if err := checkDate(in.Date); err != nil {
		return err
	}
	return checkTimeRange(in.StartTime, in.EndTime)
}

func (v *GarageValidator) validateAppointmentPatch(p models.AppointmentPatch) error {
	if isEmptyPatch(p) {
		return ErrNoFieldsToUpdate
	}
	switch {
	case p.ClientID != nil && *p.ClientID == "":
		return ErrEmptyClientID
	case p.Title != nil && strings.TrimSpace(*p.Title) == "":
		return ErrEmptyTitle
	case p.Status != nil && !slices.Contains(appointmentStatuses, *p.Status):
		return ErrInvalidStatus
	}
	if err := checkOptionalDate(p.Date); err != nil {
		return err
	}
	if p.StartTime != nil && p.EndTime != nil {
		return checkTimeRange(*p.StartTime, *p.EndTime)
	}
	for _, t := range []*string{p.StartTime, p.EndTime} {
		if t != nil {
			if _, err := time.Parse(timeOfDay, *t); err != nil {
				return ErrInvalidTime
			}
		}
	}
	return nil
}

func (v *GarageValidator) validateInterventionInsert(in models.InterventionInsert) error {
	switch {
	case in.VehicleID == "":
		return ErrEmptyVehicleID
	case in.ClientID == "":
		return ErrEmptyClientID
	case strings.TrimSpace(in.Type) == "":
		return ErrEmptyType
	case in.Duration < 0:
		return ErrInvalidDuration
	case in.Cost.IsNegative():
		return ErrNegativeAmount
	case in.Status != "" && !slices.Contains(interventionStatuses, in.Status):
		return ErrInvalidStatus
	}
	if err := checkDate(in.Date); err != nil {
		return err
	}
	return checkParts(in.Parts)
}

func (v *GarageValidator) validateInterventionPatch(p models.InterventionPatch) error {
	if isEmptyPatch(p) {
		return ErrNoFieldsToUpdate
	}
	switch {
	case p.VehicleID != nil && *p.VehicleID == "":
		return ErrEmptyVehicleID
	case p.ClientID != nil && *p.ClientID == "":
		return ErrEmptyClientID
	case p.Type != nil && strings.TrimSpace(*p.Type) == "":
		return ErrEmptyType
	case p.Duration != nil && *p.Duration < 0:
		return ErrInvalidDuration
	case p.Cost != nil && p.Cost.IsNegative():
		return ErrNegativeAmount
	case p.Status != nil && !slices.Contains(interventionStatuses, *p.Status):
		return ErrInvalidStatus
	}
	if err := checkOptionalDate(p.Date); err != nil {
		return err
	}
	if p.Parts != nil {
		return checkParts(*p.Parts)
	}
	return nil
}

func (v *GarageValidator) validateInvoiceInsert(in models.InvoiceInsert) error {
	draft := models.InvoiceDraft{
		ClientID:      in.ClientID,
		InvoiceNumber: in.InvoiceNumber,
		Date:          in.Date,
		DueDate:       in.DueDate,
		Status:        in.Status,
		TaxRate:       in.TaxRate,
	}
	if err := v.validateInvoiceDraft(draft); err != nil {
		return err
	}
	if in.PaidAmount.IsNegative() || in.DiscountAmount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

func (v *GarageValidator) validateInvoicePatch(p models.InvoicePatch) error {
	if isEmptyPatch(p) {
		return ErrNoFieldsToUpdate
	}
	switch {
	case p.ClientID != nil && *p.ClientID == "":
		return ErrEmptyClientID
	case p.InvoiceNumber != nil && strings.TrimSpace(*p.InvoiceNumber) == "":
		return ErrEmptyNumber
	case p.Status != nil && !slices.Contains(invoiceStatuses, *p.Status):
		return ErrInvalidStatus
	case p.TaxRate != nil && !isPercent(*p.TaxRate):
		return ErrInvalidPercent
	case p.PaidAmount != nil && p.PaidAmount.IsNegative():
		return ErrNegativeAmount
	}
	if err := checkOptionalDate(p.Date); err != nil {
		return err
	}
	return checkOptionalDate(p.DueDate)
}

func (v *GarageValidator) validateQuoteInsert(in models.QuoteInsert) error {
	draft := models.QuoteDraft{
		ClientID:    in.ClientID,
		QuoteNumber: in.QuoteNumber,
		Date:        in.Date,
		ExpiryDate:  in.ExpiryDate,
		Status:      in.Status,
		TaxRate:     in.TaxRate,
	}
	if err := v.validateQuoteDraft(draft); err != nil {
		return err
	}
	if in.DiscountAmount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

func (v *GarageValidator) validateQuotePatch(p models.QuotePatch) error {
	if isEmptyPatch(p) {
		return ErrNoFieldsToUpdate
	}
	switch {
	case p.ClientID != nil && *p.ClientID == "":
		return ErrEmptyClientID
	case p.QuoteNumber != nil && strings.TrimSpace(*p.QuoteNumber) == "":
		return ErrEmptyNumber
	case p.Status != nil && !slices.Contains(quoteStatuses, *p.Status):
		return ErrInvalidStatus
	case p.TaxRate != nil && !isPercent(*p.TaxRate):
		return ErrInvalidPercent
	}
	if err := checkOptionalDate(p.Date); err != nil {
		return err
	}
	return checkOptionalDate(p.ExpiryDate)
}

func (v *GarageValidator) checkYear(year int) error {
	if year < 1886 || year > v.now().Year()+1 {
		return ErrInvalidYear
	}
	return nil
}

func isPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(hundred)
}

func checkDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

func checkOptionalDate(s *string) error {
	if s == nil || *s == "" {
		return nil
	}
	return checkDate(*s)
}

func checkTimeRange(start, end string) error {
	from, err := time.Parse(timeOfDay, start)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, start)
	}
	to, err := time.Parse(timeOfDay, end)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, end)
	}
	if !to.After(from) {
		return ErrInvalidTimeRange
	}
	return nil
}

func checkParts(parts []models.Part) error {
	for i, part := range parts {
		switch {
		case strings.TrimSpace(part.Name) == "":
			return fmt.Errorf("part %d: %w", i, ErrEmptyName)
		case part.Quantity.IsNegative():
			return fmt.Errorf("part %d: %w", i, ErrNegativeQuantity)
		case part.UnitPrice.IsNegative():
			return fmt.Errorf("part %d: %w", i, ErrNegativePrice)
		}
	}
	return nil
}

// isEmptyPatch reports whether every field of a patch is nil.
func isEmptyPatch(patch any) bool {
	data, err := json.Marshal(patch)
	return err == nil && string(data) == "{}"
}
