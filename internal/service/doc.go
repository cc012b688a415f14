// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service wires the garage resources and document builders over one
// remote backend.
//
// A Backend is either the REST adapter or the SQL store; both expose the same
// typed tables. NewServices builds one Resource per entity kind with its
// canonical order, labels, merge rule and validator, plus the invoice and
// quote builders writing their line items through the item tables.
package service
