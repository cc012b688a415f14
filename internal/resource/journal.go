// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"slices"

	"github.com/MKhiriev/go-garage/models"
)

type mutationKind int

const (
	mutationCreated mutationKind = iota
	mutationUpdated
	mutationRemoved
)

// mutation is a write that completed while a refresh was in flight.
type mutation[T models.Record] struct {
	seq  uint64
	kind mutationKind
	id   string
	row  T
}

// journal holds the mutations a refresh snapshot may predate.
type journal[T models.Record] struct {
	entries []mutation[T]
}

func (j *journal[T]) record(m mutation[T]) {
	j.entries = append(j.entries, m)
}

func (j *journal[T]) reset() {
	j.entries = nil
}

// replay applies every mutation with seq greater than since onto rows.
// Removed ids stay removed, created rows stay present and updated rows keep
// the value the mutation returned.
func (j *journal[T]) replay(rows []T, since uint64) []T {
	for _, m := range j.entries {
		if m.seq <= since {
			continue
		}

		idx := slices.IndexFunc(rows, func(row T) bool { return row.RecordID() == m.id })
		switch m.kind {
		case mutationCreated:
			if idx < 0 {
				rows = slices.Insert(rows, 0, m.row)
			}
		case mutationUpdated:
			if idx >= 0 {
				rows[idx] = m.row
			}
		case mutationRemoved:
			if idx >= 0 {
				rows = slices.Delete(rows, idx, idx+1)
			}
		}
	}
	return rows
}
