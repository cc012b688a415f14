// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the garage entities as they travel between the remote
// store and the in-memory resources: rows, insert payloads, partial-update
// patches and the denormalized snapshots joined onto rows.
//
// Monetary amounts and quantities are [decimal.Decimal]. They decode from JSON
// numbers or strings; the binaries set decimal.MarshalJSONWithoutQuotes so
// they are encoded as numbers too. Calendar dates are "YYYY-MM-DD" strings and
// times of day "HH:MM" strings, exactly as the remote store exchanges them.
package models
