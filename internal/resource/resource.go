// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource keeps an in-memory, ordered copy of one remote table and
// applies create, update and delete operations to it once the remote store has
// confirmed them.
//
// The cache is never changed before the remote call returns. Failures leave it
// untouched, are logged, surfaced through the Notifier and returned wrapped.
//
// Concurrent use is safe. Updates and removals of the same id run one at a
// time in call order. Writes that complete while a Refresh is in flight are
// replayed onto the snapshot it brings back, so a stale snapshot cannot bring
// back a removed row or drop a created one.
package resource

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-garage/internal/logger"
	"github.com/MKhiriev/go-garage/internal/validators"
	"github.com/MKhiriev/go-garage/models"
)

// State is the loading state of a Resource.
type State int

const (
	// StateUninitialized means Refresh has never been called.
	StateUninitialized State = iota
	// StateLoading means at least one Refresh is in flight.
	StateLoading
	// StateIdle means no Refresh is in flight.
	StateIdle
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateIdle:
		return "idle"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Config describes one entity kind.
type Config[T models.Record] struct {
	// Labels name the kind in notifications and logs.
	Labels Labels

	// Order is passed to Store.FetchAll.
	Order []models.Order

	// Compare orders a fetched snapshot locally (stable). Nil keeps the remote order.
	Compare func(a, b T) int

	// Merge combines the cached row and the row returned by an update.
	// Nil replaces the cached row.
	Merge func(prev, next T) T

	// Validator, when set, checks insert payloads and patches before any remote call.
	Validator validators.Validator

	// Notifier receives success and error notifications. Nil disables them.
	Notifier Notifier
}

// Resource is the cache of one entity kind over a remote Store.
type Resource[T models.Record, I any, P any] struct {
	store  Store[T, I, P]
	cfg    Config[T]
	logger *logger.Logger

	mu       sync.RWMutex
	items    []T
	state    State
	inflight int

	// version counts completed writes; refreshes remember it when they start.
	version uint64
	// generation numbers refreshes; a snapshot older than the applied one is dropped.
	generation uint64
	applied    uint64
	journal    journal[T]

	lanes *sequencer
}

// New builds a Resource over store. The cache starts empty and uninitialized.
func New[T models.Record, I any, P any](store Store[T, I, P], cfg Config[T], log *logger.Logger) *Resource[T, I, P] {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Merge == nil {
		cfg.Merge = func(_, next T) T { return next }
	}

	return &Resource[T, I, P]{
		store:  store,
		cfg:    cfg,
		logger: log,
		lanes:  newSequencer(),
	}
}

// List returns a copy of the cached rows. It never blocks on the remote store
// and may be stale.
func (r *Resource[T, I, P]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.items)
}

// Get returns the cached row with id.
func (r *Resource[T, I, P]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx := r.indexOf(id); idx >= 0 {
		return r.items[idx], true
	}

	var zero T
	return zero, false
}

// Len returns the number of cached rows.
func (r *Resource[T, I, P]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// State returns the current loading state.
func (r *Resource[T, I, P]) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.state
}

// Loading reports whether a Refresh is in flight.
func (r *Resource[T, I, P]) Loading() bool {
	return r.State() == StateLoading
}

// Labels returns the kind's labels.
func (r *Resource[T, I, P]) Labels() Labels {
	return r.cfg.Labels
}

// Refresh replaces the cache with the remote rows in canonical order.
// On failure the cache is left as is. Either way the state ends idle once no
// other Refresh is in flight.
func (r *Resource[T, I, P]) Refresh(ctx context.Context) error {
	r.mu.Lock()
	r.inflight++
	r.state = StateLoading
	r.generation++
	gen, since := r.generation, r.version
	r.mu.Unlock()

	rows, err := r.store.FetchAll(ctx, r.cfg.Order)

	r.mu.Lock()
	r.inflight--
	if err == nil && gen > r.applied {
		if r.cfg.Compare != nil {
			slices.SortStableFunc(rows, r.cfg.Compare)
		}
		r.items = r.journal.replay(rows, since)
		r.applied = gen
	}
	if r.inflight == 0 {
		r.state = StateIdle
		r.journal.reset()
	}
	r.mu.Unlock()

	if err != nil {
		r.logger.Err(err).
			Str("func", "Resource.Refresh").
			Str("kind", r.cfg.Labels.Plural).
			Msg("error fetching rows from remote store")
		r.notify(ctx, r.cfg.Labels.loadFailed(err))
		return fmt.Errorf("%w: %s: %w", ErrRefresh, r.cfg.Labels.Plural, err)
	}
	return nil
}

// Create inserts payload remotely and prepends the stored row to the cache.
func (r *Resource[T, I, P]) Create(ctx context.Context, payload I) (T, error) {
	var zero T

	if err := r.validate(ctx, payload); err != nil {
		r.notify(ctx, r.cfg.Labels.failed(opCreate, err))
		return zero, fmt.Errorf("%w: %w", ErrCreate, err)
	}

	row, err := r.store.InsertOne(ctx, payload)
	if err != nil {
		r.logger.Err(err).
			Str("func", "Resource.Create").
			Str("kind", r.cfg.Labels.Plural).
			Msg("error inserting row into remote store")
		r.notify(ctx, r.cfg.Labels.failed(opCreate, err))
		return zero, fmt.Errorf("%w: %w", ErrCreate, err)
	}

	r.mu.Lock()
	r.items = slices.Insert(r.items, 0, row)
	r.commit(mutationCreated, row.RecordID(), row)
	r.mu.Unlock()

	r.notify(ctx, r.cfg.Labels.succeeded(opCreate))
	return row, nil
}

// Update applies patch remotely and merges the stored row into the cached one.
// Calls for the same id are applied in call order.
func (r *Resource[T, I, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	if id == "" {
		r.notify(ctx, r.cfg.Labels.failed(opUpdate, ErrEmptyID))
		return zero, fmt.Errorf("%w: %w", ErrUpdate, ErrEmptyID)
	}
	if err := r.validate(ctx, patch); err != nil {
		r.notify(ctx, r.cfg.Labels.failed(opUpdate, err))
		return zero, fmt.Errorf("%w: %w", ErrUpdate, err)
	}

	release, err := r.lanes.acquire(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrUpdate, err)
	}
	defer release()

	row, err := r.store.UpdateOne(ctx, id, patch)
	if err != nil {
		r.logger.Err(err).
			Str("func", "Resource.Update").
			Str("kind", r.cfg.Labels.Plural).
			Str("id", id).
			Msg("error updating row in remote store")
		r.notify(ctx, r.cfg.Labels.failed(opUpdate, err))
		return zero, fmt.Errorf("%w: %w", ErrUpdate, err)
	}

	r.mu.Lock()
	if idx := r.indexOf(id); idx >= 0 {
		row = r.cfg.Merge(r.items[idx], row)
		r.items[idx] = row
	}
	r.commit(mutationUpdated, id, row)
	r.mu.Unlock()

	r.notify(ctx, r.cfg.Labels.succeeded(opUpdate))
	return row, nil
}

// Remove deletes the row remotely and drops it from the cache.
// Calls for the same id are applied in call order.
func (r *Resource[T, I, P]) Remove(ctx context.Context, id string) error {
	if id == "" {
		r.notify(ctx, r.cfg.Labels.failed(opDelete, ErrEmptyID))
		return fmt.Errorf("%w: %w", ErrRemove, ErrEmptyID)
	}

	release, err := r.lanes.acquire(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemove, err)
	}
	defer release()

	if err = r.store.DeleteOne(ctx, id); err != nil {
		r.logger.Err(err).
			Str("func", "Resource.Remove").
			Str("kind", r.cfg.Labels.Plural).
			Str("id", id).
			Msg("error deleting row from remote store")
		r.notify(ctx, r.cfg.Labels.failed(opDelete, err))
		return fmt.Errorf("%w: %w", ErrRemove, err)
	}

	r.mu.Lock()
	r.items = slices.DeleteFunc(r.items, func(row T) bool { return row.RecordID() == id })
	var zero T
	r.commit(mutationRemoved, id, zero)
	r.mu.Unlock()

	r.notify(ctx, r.cfg.Labels.succeeded(opDelete))
	return nil
}

// commit must be called with mu held.
func (r *Resource[T, I, P]) commit(kind mutationKind, id string, row T) {
	r.version++
	if r.inflight > 0 {
		r.journal.record(mutation[T]{seq: r.version, kind: kind, id: id, row: row})
	}
}

// indexOf must be called with mu held.
func (r *Resource[T, I, P]) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(row T) bool { return row.RecordID() == id })
}

func (r *Resource[T, I, P]) validate(ctx context.Context, payload any) error {
	if r.cfg.Validator == nil {
		return nil
	}
	if err := r.cfg.Validator.Validate(ctx, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}

func (r *Resource[T, I, P]) notify(ctx context.Context, n Notification) {
	if r.cfg.Notifier == nil {
		return
	}
	r.cfg.Notifier.Notify(ctx, n)
}
