// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/resource"
	"github.com/MKhiriev/go-garage/internal/validators"
	"github.com/MKhiriev/go-garage/models"
)

type (
	ClientResource       = resource.Resource[models.Client, models.ClientInsert, models.ClientPatch]
	VehicleResource      = resource.Resource[models.VehicleView, models.VehicleInsert, models.VehiclePatch]
	AppointmentResource  = resource.Resource[models.AppointmentView, models.AppointmentInsert, models.AppointmentPatch]
	InterventionResource = resource.Resource[models.InterventionView, models.InterventionInsert, models.InterventionPatch]
	InvoiceResource      = resource.Resource[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch]
	QuoteResource        = resource.Resource[models.QuoteView, models.QuoteInsert, models.QuotePatch]
)

var (
	ClientLabels       = resource.Labels{Singular: "Client", Plural: "clients"}
	VehicleLabels      = resource.Labels{Singular: "Vehicle", Plural: "vehicles"}
	AppointmentLabels  = resource.Labels{Singular: "Appointment", Plural: "appointments"}
	InterventionLabels = resource.Labels{Singular: "Intervention", Plural: "interventions"}
	InvoiceLabels      = resource.Labels{Singular: "Invoice", Plural: "invoices"}
	QuoteLabels        = resource.Labels{Singular: "Quote", Plural: "quotes"}
)

// Canonical orders. Appointments follow the calendar; everything else lists
// the newest first.
var (
	newestFirst   = []models.Order{models.Desc("created_at")}
	calendarOrder = []models.Order{models.Asc("date"), models.Asc("start_time")}
)

// Resources holds one cache per entity kind.
type Resources struct {
	Clients       *ClientResource
	Vehicles      *VehicleResource
	Appointments  *AppointmentResource
	Interventions *InterventionResource
	Invoices      *InvoiceResource
	Quotes        *QuoteResource
}

// NewResources builds every resource over b. notifier may be nil.
func NewResources(b Backend, v validators.Validator, notifier resource.Notifier, log *logger.Logger) *Resources {
	if log == nil {
		log = logger.Nop()
	}

	return &Resources{
		Clients: resource.New[models.Client, models.ClientInsert, models.ClientPatch](b.Clients, resource.Config[models.Client]{
			Labels:    ClientLabels,
			Order:     newestFirst,
			Compare:   byCreatedAtDesc(func(c models.Client) time.Time { return c.CreatedAt }),
			Validator: v,
			Notifier:  notifier,
		}, log),
		Vehicles: resource.New[models.VehicleView, models.VehicleInsert, models.VehiclePatch](b.Vehicles, resource.Config[models.VehicleView]{
			Labels:    VehicleLabels,
			Order:     newestFirst,
			Compare:   byCreatedAtDesc(func(v models.VehicleView) time.Time { return v.Row.CreatedAt }),
			Merge:     mergeJoined[models.Vehicle, models.OwnerJoins],
			Validator: v,
			Notifier:  notifier,
		}, log),
		Appointments: resource.New[models.AppointmentView, models.AppointmentInsert, models.AppointmentPatch](b.Appointments, resource.Config[models.AppointmentView]{
			Labels:    AppointmentLabels,
			Order:     calendarOrder,
			Compare:   byCalendar,
			Merge:     mergeJoined[models.Appointment, models.ScheduleJoins],
			Validator: v,
			Notifier:  notifier,
		}, log),
		Interventions: resource.New[models.InterventionView, models.InterventionInsert, models.InterventionPatch](b.Interventions, resource.Config[models.InterventionView]{
			Labels:    InterventionLabels,
			Order:     newestFirst,
			Compare:   byCreatedAtDesc(func(i models.InterventionView) time.Time { return i.Row.CreatedAt }),
			Merge:     mergeJoined[models.Intervention, models.ScheduleJoins],
			Validator: v,
			Notifier:  notifier,
		}, log),
		Invoices: resource.New[models.InvoiceView, models.InvoiceInsert, models.InvoicePatch](b.Invoices, resource.Config[models.InvoiceView]{
			Labels:    InvoiceLabels,
			Order:     newestFirst,
			Compare:   byCreatedAtDesc(func(i models.InvoiceView) time.Time { return i.Row.CreatedAt }),
			Merge:     mergeJoined[models.Invoice, models.BillingJoins],
			Validator: v,
			Notifier:  notifier,
		}, log),
		Quotes: resource.New[models.QuoteView, models.QuoteInsert, models.QuotePatch](b.Quotes, resource.Config[models.QuoteView]{
			Labels:    QuoteLabels,
			Order:     newestFirst,
			Compare:   byCreatedAtDesc(func(q models.QuoteView) time.Time { return q.Row.CreatedAt }),
			Merge:     mergeJoined[models.Quote, models.BillingJoins],
			Validator: v,
			Notifier:  notifier,
		}, log),
	}
}

// All returns every resource in a fixed order.
func (r *Resources) All() []Refresher {
	return []Refresher{r.Clients, r.Vehicles, r.Appointments, r.Interventions, r.Invoices, r.Quotes}
}

// RefreshAll reloads every resource concurrently. One failing resource does
// not stop the others; every failure is reported.
func (r *Resources) RefreshAll(ctx context.Context) error {
	refreshers := r.All()
	errs := make([]error, len(refreshers))

	var g errgroup.Group
	for i, res := range refreshers {
		g.Go(func() error {
			if err := res.Refresh(ctx); err != nil {
				errs[i] = fmt.Errorf("%s: %w", res.Labels().Plural, err)
				return errs[i]
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshFailed, errors.Join(errs...))
	}
	return nil
}

func byCreatedAtDesc[T any](createdAt func(T) time.Time) func(a, b T) int {
	return func(a, b T) int {
		return createdAt(b).Compare(createdAt(a))
	}
}

func byCalendar(a, b models.AppointmentView) int {
	return cmp.Or(
		strings.Compare(a.Row.Date, b.Row.Date),
		strings.Compare(a.Row.StartTime, b.Row.StartTime),
	)
}

// mergeJoined keeps the joined snapshots of prev that next left out.
func mergeJoined[E models.Record, J any](prev, next models.WithJoined[E, J]) models.WithJoined[E, J] {
	return next.MergeFrom(prev)
}
