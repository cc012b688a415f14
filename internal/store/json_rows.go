// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RowFromJSON decodes a JSON object into a Row. Integral numbers become int64
// and other numbers keep their exact decimal text, so money amounts are
// never rounded through float64.
func RowFromJSON(data []byte) (Row, error) {
	var raw map[string]any
	if err := decodeJSON(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidPayload)
	}

	return normalizeRow(raw), nil
}

// RowsFromJSON decodes either a JSON object or an array of objects.
func RowsFromJSON(data []byte) ([]Row, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		row, err := RowFromJSON(trimmed)
		if err != nil {
			return nil, err
		}
		return []Row{row}, nil
	}

	var raw []map[string]any
	if err := decodeJSON(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	rows := make([]Row, 0, len(raw))
	for i, r := range raw {
		if r == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrInvalidPayload, i)
		}
		rows = append(rows, normalizeRow(r))
	}
	return rows, nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func normalizeRow(raw map[string]any) Row {
	row := make(Row, len(raw))
	for k, v := range raw {
		row[k] = normalizeValue(v)
	}
	return row
}

func normalizeValue(v any) any {
	switch value := v.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		return value.String()
	case map[string]any:
		return normalizeRow(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}
