// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// Record is any persisted row addressed by an opaque string identifier.
type Record interface {
	RecordID() string
}

// WithJoined pairs a base row with the denormalized snapshots the remote store
// returns next to it (for example the owning client's name on a vehicle).
//
// On the wire both parts share one flat JSON object: the row's own columns plus
// one key per joined snapshot ("client", "vehicle").
type WithJoined[E Record, J any] struct {
	Row    E
	Joined J
}

// RecordID returns the identifier of the base row.
func (w WithJoined[E, J]) RecordID() string {
	return w.Row.RecordID()
}

// MergeFrom returns w with every joined snapshot the server left out taken
// from prev. The merge is shallow: a snapshot w carries is kept whole, never
// completed field by field from prev. A snapshot whose foreign key changed
// between prev and w is not carried over, so a reassigned or cleared
// reference never shows the old related row.
func (w WithJoined[E, J]) MergeFrom(prev WithJoined[E, J]) WithJoined[E, J] {
	carried := prev.Joined
	nextRow, okNext := any(w.Row).(joinKeyed)
	prevRow, okPrev := any(prev.Row).(joinKeyed)
	dropper, okDrop := any(&carried).(joinDropper)
	if okNext && okPrev && okDrop {
		nextKeys := nextRow.joinKeys()
		for name, key := range prevRow.joinKeys() {
			if nextKeys[name] != key {
				dropper.drop(name)
			}
		}
	}

	next := w
	if err := mergo.Merge(&next.Joined, carried, mergo.WithoutDereference); err != nil {
		return w
	}
	return next
}

// joinKeyed rows report the foreign key behind each joined snapshot, keyed
// by the snapshot's JSON name. A null reference is "".
type joinKeyed interface {
	joinKeys() map[string]string
}

// joinDropper clears the snapshot with the given JSON name.
type joinDropper interface {
	drop(name string)
}

// MarshalJSON flattens the row and its joined snapshots into one object.
func (w WithJoined[E, J]) MarshalJSON() ([]byte, error) {
	row, err := toObject(w.Row)
	if err != nil {
		return nil, fmt.Errorf("marshal row: %w", err)
	}
	joined, err := toObject(w.Joined)
	if err != nil {
		return nil, fmt.Errorf("marshal joined: %w", err)
	}

	maps.Copy(row, joined)
	return json.Marshal(row)
}

// UnmarshalJSON decodes the same object into both the row and the joined part.
func (w *WithJoined[E, J]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &w.Row); err != nil {
		return fmt.Errorf("unmarshal row: %w", err)
	}
	if err := json.Unmarshal(data, &w.Joined); err != nil {
		return fmt.Errorf("unmarshal joined: %w", err)
	}
	return nil
}

func toObject(v any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	obj := make(map[string]json.RawMessage)
	if err = json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
