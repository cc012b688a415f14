// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrRefreshFailed      = errors.New("refresh failed")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrFetchingItems      = errors.New("error fetching line items")
)
