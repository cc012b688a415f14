// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package billing

import "errors"

var (
	// ErrSubmitFailed wraps every Submit failure.
	ErrSubmitFailed = errors.New("document submit failed")

	// ErrInvalidInput means nothing was written.
	ErrInvalidInput = errors.New("invalid document input")

	// ErrLineItemsNotSaved means the document was written but its items were not.
	ErrLineItemsNotSaved = errors.New("line items not saved")

	// ErrDocumentRemoved accompanies ErrLineItemsNotSaved when compensation
	// removed the document.
	ErrDocumentRemoved = errors.New("document without items removed")

	ErrCompensationFailed = errors.New("removing document without items failed")
)
