// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import "errors"

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrEmptyID        = errors.New("id is required")

	ErrRefresh = errors.New("refresh failed")
	ErrCreate  = errors.New("create failed")
	ErrUpdate  = errors.New("update failed")
	ErrRemove  = errors.New("remove failed")
)
