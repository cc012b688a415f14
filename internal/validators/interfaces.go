// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-supplied records at the boundary, before any
// remote write: insert payloads, partial-update patches, document drafts and
// editable line items.
//
// Validators are injected into resources and document builders; an invalid
// input fails fast and never reaches the remote store.
package validators

import "context"

// Validator validates an input value. When fields are given only those named
// fields are checked; otherwise every rule for the value's type applies.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
