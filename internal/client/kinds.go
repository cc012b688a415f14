// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-garage/internal/resource"
	"github.com/MKhiriev/go-garage/internal/service"
	"github.com/MKhiriev/go-garage/models"
)

// kind is one resource as seen from the command line: payloads arrive as
// JSON and rows leave as a table or JSON.
type kind interface {
	refresh(ctx context.Context) error
	table(w io.Writer) error
	get(id string) (any, bool)
	create(ctx context.Context, data []byte) (any, error)
	update(ctx context.Context, id string, data []byte) (any, error)
	remove(ctx context.Context, id string) error
}

type resourceKind[T models.Record, I any, P any] struct {
	res     *resource.Resource[T, I, P]
	header  []string
	columns func(T) []string

	// createWith names the command that creates rows of this kind together
	// with their line items. Such rows are never created bare.
	createWith string
}

func (k resourceKind[T, I, P]) refresh(ctx context.Context) error {
	return k.res.Refresh(ctx)
}

func (k resourceKind[T, I, P]) table(w io.Writer) error {
	rows := k.res.List()
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, k.columns(row))
	}
	return writeTable(w, k.header, cells)
}

func (k resourceKind[T, I, P]) get(id string) (any, bool) {
	return k.res.Get(id)
}

func (k resourceKind[T, I, P]) create(ctx context.Context, data []byte) (any, error) {
	if k.createWith != "" {
		return nil, fmt.Errorf("%w: %s are created with their items by the %q command", ErrUsage, k.res.Labels().Plural, k.createWith)
	}

	payload, err := decodeStrict[I](data)
	if err != nil {
		return nil, err
	}
	return k.res.Create(ctx, payload)
}

func (k resourceKind[T, I, P]) update(ctx context.Context, id string, data []byte) (any, error) {
	patch, err := decodeStrict[P](data)
	if err != nil {
		return nil, err
	}
	return k.res.Update(ctx, id, patch)
}

func (k resourceKind[T, I, P]) remove(ctx context.Context, id string) error {
	return k.res.Remove(ctx, id)
}

// decodeStrict rejects unknown fields so a typo never becomes a silent no-op.
func decodeStrict[T any](data []byte) (T, error) {
	var out T

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return out, nil
}

func newKinds(r *service.Resources) map[string]kind {
	return map[string]kind{
		models.TableClients: resourceKind[models.Client, models.ClientInsert, models.ClientPatch]{
			res:    r.Clients,
			header: []string{"ID", "NAME", "PHONE", "EMAIL", "STATUS"},
			columns: func(c models.Client) []string {
				return []string{c.ID, c.Name, deref(c.Phone), deref(c.Email), string(c.Status)}
			},
		},
		models.TableVehicles: resourceKind[models.VehicleView, models.VehicleInsert, models.VehiclePatch]{
			res:    r.Vehicles,
			header: []string{"ID", "VEHICLE", "PLATE", "YEAR", "OWNER", "STATUS"},
			columns: func(v models.VehicleView) []string {
				return []string{
					v.Row.ID, v.Row.Make + " " + v.Row.Model, v.Row.LicensePlate,
					strconv.Itoa(v.Row.Year), clientName(v.Joined.Client), string(v.Row.Status),
				}
			},
		},
		models.TableAppointments: resourceKind[models.AppointmentView, models.AppointmentInsert, models.AppointmentPatch]{
			res:    r.Appointments,
			header: []string{"ID", "DATE", "TIME", "TITLE", "CLIENT", "PLATE", "STATUS"},
			columns: func(a models.AppointmentView) []string {
				return []string{
					a.Row.ID, a.Row.Date, a.Row.StartTime + "-" + a.Row.EndTime, a.Row.Title,
					clientName(a.Joined.Client), plate(a.Joined.Vehicle), string(a.Row.Status),
				}
			},
		},
		models.TableInterventions: resourceKind[models.InterventionView, models.InterventionInsert, models.InterventionPatch]{
			res:    r.Interventions,
			header: []string{"ID", "DATE", "TYPE", "PLATE", "CLIENT", "COST", "STATUS"},
			columns: func(i models.InterventionView) []string {
				return []string{
					i.Row.ID, i.Row.Date, i.Row.Type, plate(i.Joined.Vehicle),
					clientName(i.Joined.Client), money(i.Row.Cost), string(i.Row.Status),
				}
			},
		},
		models.TableInvoices: resourceKind[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch]{
			res:    r.Invoices,
			header: []string{"ID", "NUMBER", "DATE", "CLIENT", "AMOUNT", "PAID", "STATUS"},
			columns: func(i models.InvoiceView) []string {
				return []string{
					i.Row.ID, i.Row.InvoiceNumber, i.Row.Date, clientName(i.Joined.Client),
					money(i.Row.Amount), money(i.Row.PaidAmount), string(i.Row.Status),
				}
			},
			createWith: "invoice",
		},
		models.TableQuotes: resourceKind[models.QuoteView, models.QuoteInsert, models.QuotePatch]{
			res:    r.Quotes,
			header: []string{"ID", "NUMBER", "DATE", "CLIENT", "TOTAL", "STATUS"},
			columns: func(q models.QuoteView) []string {
				return []string{
					q.Row.ID, q.Row.QuoteNumber, q.Row.Date, clientName(q.Joined.Client),
					money(q.Row.TotalAmount), string(q.Row.Status),
				}
			},
			createWith: "quote",
		},
	}
}
