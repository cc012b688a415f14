// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrder is returned by ParseOrder for a malformed order clause.
var ErrInvalidOrder = errors.New("invalid order clause")

// Order is one column of a remote ordering clause.
type Order struct {
	// Column is the row column to sort by.
	Column string

	// Ascending selects ascending order; descending otherwise.
	Ascending bool
}

// Asc returns an ascending Order on column.
func Asc(column string) Order {
	return Order{Column: column, Ascending: true}
}

// Desc returns a descending Order on column.
func Desc(column string) Order {
	return Order{Column: column}
}

// String renders the order in the "column.asc" / "column.desc" form.
func (o Order) String() string {
	if o.Ascending {
		return o.Column + ".asc"
	}
	return o.Column + ".desc"
}

// FormatOrder joins orders into a comma separated clause, e.g. "date.asc,start_time.asc".
func FormatOrder(orders []Order) string {
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		parts = append(parts, o.String())
	}
	return strings.Join(parts, ",")
}

// ParseOrder is the inverse of FormatOrder. A column without a direction sorts ascending.
func ParseOrder(clause string) ([]Order, error) {
	if strings.TrimSpace(clause) == "" {
		return nil, nil
	}

	var orders []Order
	for part := range strings.SplitSeq(clause, ",") {
		column, direction, found := strings.Cut(strings.TrimSpace(part), ".")
		if column == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, clause)
		}

		switch {
		case !found, direction == "asc":
			orders = append(orders, Asc(column))
		case direction == "desc":
			orders = append(orders, Desc(column))
		default:
			return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidOrder, direction)
		}
	}
	return orders, nil
}
