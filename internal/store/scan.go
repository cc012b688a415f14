// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// scanRows reads every row of rows. Byte values become strings, JSON columns
// become json.RawMessage and "alias__column" values are folded into the
// alias's snapshot map.
func scanRows(rows *sql.Rows, def TableDef) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	out := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}

		if err = rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		out = append(out, buildRow(def, columns, values))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func buildRow(def TableDef, columns []string, values []any) Row {
	row := make(Row, len(columns))
	snapshots := make(map[string]map[string]any, len(def.Joins))

	for i, column := range columns {
		value := values[i]
		if b, ok := value.([]byte); ok {
			value = string(b)
		}

		if alias, field, ok := strings.Cut(column, joinSep); ok {
			if snapshots[alias] == nil {
				snapshots[alias] = make(map[string]any)
			}
			snapshots[alias][field] = value
			continue
		}

		if s, ok := value.(string); ok && def.isJSON(column) {
			value = json.RawMessage(s)
		}
		row[column] = value
	}

	for _, j := range def.Joins {
		snapshot := snapshots[j.As]
		if allNil(snapshot) {
			row[j.As] = nil
			continue
		}
		row[j.As] = snapshot
	}

	return row
}

func allNil(m map[string]any) bool {
	for _, v := range m {
		if v != nil {
			return false
		}
	}
	return true
}
