// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-garage/internal/billing"
	"github.com/MKhiriev/go-garage/internal/pricing"
	"github.com/MKhiriev/go-garage/models"
)

// itemsFlag collects repeated -item values.
type itemsFlag []pricing.EditableLineItem

func (f *itemsFlag) String() string {
	return strconv.Itoa(len(*f)) + " items"
}

// Set parses "description;quantity;unit_price[;discount_percent[;tax_rate]]".
// An omitted tax rate is the default rate; unparseable numbers are zero.
func (f *itemsFlag) Set(s string) error {
	parts := strings.Split(s, ";")
	if len(parts) < 3 || len(parts) > 5 {
		return fmt.Errorf("%w: %q", ErrInvalidItem, s)
	}

	item := billing.NewLineItem(strings.TrimSpace(parts[0]))
	item.Quantity = pricing.ParseAmount(parts[1])
	item.UnitPrice = pricing.ParseAmount(parts[2])
	if len(parts) > 3 {
		item.DiscountPercent = pricing.ParseAmount(parts[3])
	}
	if len(parts) > 4 {
		item.TaxRate = pricing.ParseAmount(parts[4])
	}
	item.SortOrder = len(*f)

	*f = append(*f, item)
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) price(_ context.Context, args []string) error {
	var items itemsFlag
	fs := newFlagSet("price")
	fs.Var(&items, "item", "line item")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	priced := pricing.PriceLineItems(items)
	return a.printPriced(priced, pricing.Aggregate(priced))
}

func (a *App) invoice(ctx context.Context, args []string) error {
	var items itemsFlag
	fs := newFlagSet("invoice")
	fs.Var(&items, "item", "line item")
	clientID := fs.String("client", "", "client id")
	number := fs.String("number", "", "invoice number")
	date := fs.String("date", "", "invoice date")
	due := fs.String("due", "", "due date")
	status := fs.String("status", "", "status")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	draft := billing.NewInvoiceDraft(*clientID, a.now())
	setIf(&draft.InvoiceNumber, *number)
	setIf(&draft.Date, *date)
	setIf((*string)(&draft.Status), *status)
	if *due != "" {
		draft.DueDate = due
	}
	if *notes != "" {
		draft.Notes = notes
	}

	created, err := a.services.Invoices.Submit(ctx, draft, items)
	if err != nil {
		a.reportOrphan(err, "invoice", created.Document.Row.InvoiceNumber, created.Document.Row.ID)
		return err
	}

	fmt.Fprintf(a.out, "invoice %s created (%s) for %s\n",
		created.Document.Row.InvoiceNumber, created.Document.Row.ID, clientName(created.Document.Joined.Client))
	return a.printPriced(created.Items, created.Totals)
}

func (a *App) quote(ctx context.Context, args []string) error {
	var items itemsFlag
	fs := newFlagSet("quote")
	fs.Var(&items, "item", "line item")
	clientID := fs.String("client", "", "client id")
	number := fs.String("number", "", "quote number")
	date := fs.String("date", "", "quote date")
	expiry := fs.String("expiry", "", "expiry date")
	status := fs.String("status", "", "status")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	draft := billing.NewQuoteDraft(*clientID, a.now())
	setIf(&draft.QuoteNumber, *number)
	setIf(&draft.Date, *date)
	setIf((*string)(&draft.Status), *status)
	if *expiry != "" {
		draft.ExpiryDate = expiry
	}

	created, err := a.services.Quotes.Submit(ctx, draft, items)
	if err != nil {
		a.reportOrphan(err, "quote", created.Document.Row.QuoteNumber, created.Document.Row.ID)
		return err
	}

	fmt.Fprintf(a.out, "quote %s created (%s) for %s\n",
		created.Document.Row.QuoteNumber, created.Document.Row.ID, clientName(created.Document.Joined.Client))
	return a.printPriced(created.Items, created.Totals)
}

func (a *App) items(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: items invoice|quote <id>", ErrUsage)
	}

	var values []models.LineItemValues
	switch args[0] {
	case "invoice", models.TableInvoices:
		rows, err := a.services.InvoiceItems(ctx, args[1])
		if err != nil {
			return err
		}
		for _, r := range rows {
			values = append(values, r.LineItemValues)
		}
	case "quote", models.TableQuotes:
		rows, err := a.services.QuoteItems(ctx, args[1])
		if err != nil {
			return err
		}
		for _, r := range rows {
			values = append(values, r.LineItemValues)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, args[0])
	}

	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{
			strconv.Itoa(v.SortOrder), v.Description, v.Quantity.String(), money(v.UnitPrice),
			v.DiscountPercent.String(), v.TaxRate.String(), money(v.Subtotal), money(v.Total),
		})
	}
	return writeTable(a.out, []string{"#", "DESCRIPTION", "QTY", "UNIT PRICE", "DISC %", "TAX %", "SUBTOTAL", "TOTAL"}, rows)
}

func (a *App) printPriced(items []pricing.PricedLineItem, totals pricing.Totals) error {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.SortOrder), it.Description, it.Quantity.String(), money(it.UnitPrice),
			it.DiscountPercent.String(), it.TaxRate.String(), money(it.Subtotal), money(it.TaxAmount), money(it.Total),
		})
	}
	if err := writeTable(a.out, []string{"#", "DESCRIPTION", "QTY", "UNIT PRICE", "DISC %", "TAX %", "SUBTOTAL", "TAX", "TOTAL"}, rows); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Subtotal: %s\n", money(totals.Subtotal))
	fmt.Fprintf(a.out, "Discount: %s\n", money(pricing.DiscountTotal(items)))
	fmt.Fprintf(a.out, "Tax:      %s\n", money(totals.TaxAmount))
	fmt.Fprintf(a.out, "Total:    %s\n", money(totals.Total))
	return nil
}

func (a *App) reportOrphan(err error, name, number, id string) {
	if !errors.Is(err, billing.ErrLineItemsNotSaved) || errors.Is(err, billing.ErrDocumentRemoved) {
		return
	}
	fmt.Fprintf(a.out, "warning: %s %s (%s) was saved without its line items\n", name, number, id)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
