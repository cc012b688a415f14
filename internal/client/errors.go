// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUsage          = errors.New("usage error")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownKind    = errors.New("unknown kind")
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidData    = errors.New("invalid data")
	ErrInvalidItem    = errors.New("invalid line item")
)
