// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("row not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidAddress     = errors.New("invalid adapter address")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrDecodingResponse   = errors.New("error decoding response")
	ErrSendingRequest     = errors.New("error sending request")
)
