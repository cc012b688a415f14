// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-garage/internal/pricing"
	"github.com/MKhiriev/go-garage/models"
)

func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// money rounds for display only; stored amounts keep full precision.
func money(d decimal.Decimal) string {
	return pricing.Round(d, 2).StringFixed(2)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clientName(c *models.ClientSnapshot) string {
	if c == nil {
		return "-"
	}
	return c.Name
}

func plate(v *models.VehicleSnapshot) string {
	if v == nil {
		return "-"
	}
	return v.LicensePlate
}
