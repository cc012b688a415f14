// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyName         = errors.New("name is required")
	ErrEmptyClientID     = errors.New("client id is required")
	ErrEmptyVehicleID    = errors.New("vehicle id is required")
	ErrEmptyMake         = errors.New("make is required")
	ErrEmptyModel        = errors.New("model is required")
	ErrEmptyLicensePlate = errors.New("license plate is required")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyType         = errors.New("intervention type is required")
	ErrEmptyNumber       = errors.New("document number is required")
	ErrEmptyDescription  = errors.New("description is required")
	ErrNoLineItems       = errors.New("at least one line item is required")

	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidYear      = errors.New("invalid vehicle year")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNegativePrice    = errors.New("unit price cannot be negative")
	ErrInvalidPercent   = errors.New("percentage must be between 0 and 100")
	ErrInvalidDuration  = errors.New("duration cannot be negative")
)
