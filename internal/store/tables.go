// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-garage/internal/logger"
)

// joinSep separates a join alias from a related column in a result column
// name ("client__name").
const joinSep = "__"

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Tables is the SQL implementation of [TableStore]. Ids are UUIDv7 strings
// and timestamps are set by the store, not the database.
type Tables struct {
	db     *DB
	defs   map[string]TableDef
	now    func() time.Time
	newID  func() (string, error)
	logger *logger.Logger
}

// NewTables serves defs over db.
func NewTables(db *DB, log *logger.Logger, defs ...TableDef) *Tables {
	if log == nil {
		log = logger.Nop()
	}
	log.Debug().Int("tables", len(defs)).Msg("creating sql tables")

	byName := make(map[string]TableDef, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}

	return &Tables{
		db:     db,
		defs:   byName,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  newUUIDv7,
		logger: log,
	}
}

// NewGarageTables serves every garage table over db.
func NewGarageTables(db *DB, log *logger.Logger) *Tables {
	return NewTables(db, log, GarageTables()...)
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Def returns the definition of table.
func (t *Tables) Def(table string) (TableDef, error) {
	def, ok := t.defs[table]
	if !ok {
		return TableDef{}, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return def, nil
}

// Select implements [TableStore].
func (t *Tables) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	def, err := t.Def(table)
	if err != nil {
		return nil, err
	}

	builder, err := t.selectBuilder(def, q)
	if err != nil {
		return nil, err
	}

	return t.query(ctx, t.db, def, builder)
}

// Insert implements [TableStore].
func (t *Tables) Insert(ctx context.Context, table string, rows []Row) ([]Row, error) {
	log := logger.FromContext(ctx)

	def, err := t.Def(table)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []Row{}, nil
	}
	if len(rows) == 1 {
		row, err := t.insert(ctx, t.db, def, rows[0])
		if err != nil {
			return nil, err
		}
		return []Row{row}, nil
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "Tables.Insert").Str("table", table).Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]Row, 0, len(rows))
	for i, row := range rows {
		stored, err := t.insert(ctx, tx, def, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, stored)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "Tables.Insert").Str("table", table).Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return out, nil
}

// Update implements [TableStore]. Only writable columns of patch are applied;
// read-only keys such as the id or a joined snapshot are ignored.
func (t *Tables) Update(ctx context.Context, table string, id string, patch Row) (Row, error) {
	def, err := t.Def(table)
	if err != nil {
		return nil, err
	}

	values, err := writableValues(def, patch)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNothingToUpdate
	}
	if def.UpdatedAt {
		values["updated_at"] = t.now()
	}

	query, args, err := t.db.builder.Update(def.Name).SetMap(values).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = t.exec(ctx, t.db, "Tables.Update", def.Name, id, query, args); err != nil {
		return nil, err
	}

	return t.selectOne(ctx, t.db, def, id)
}

// Delete implements [TableStore]. A missing id is [ErrNotFound].
func (t *Tables) Delete(ctx context.Context, table string, id string) error {
	def, err := t.Def(table)
	if err != nil {
		return err
	}

	query, args, err := t.db.builder.Delete(def.Name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.exec(ctx, t.db, "Tables.Delete", def.Name, id, query, args)
}

func (t *Tables) insert(ctx context.Context, q querier, def TableDef, row Row) (Row, error) {
	values, err := writableValues(def, row)
	if err != nil {
		return nil, err
	}

	id, err := t.newID()
	if err != nil {
		return nil, fmt.Errorf("generating id: %w", err)
	}
	values["id"] = id

	now := t.now()
	if def.CreatedAt {
		values["created_at"] = now
	}
	if def.UpdatedAt {
		values["updated_at"] = now
	}

	query, args, err := t.db.builder.Insert(def.Name).SetMap(values).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return nil, t.statementError(ctx, "Tables.insert", def.Name, err)
	}

	return t.selectOne(ctx, q, def, id)
}

// exec runs an UPDATE or DELETE of one id; no affected row is [ErrNotFound].
func (t *Tables) exec(ctx context.Context, q querier, fn, table, id, query string, args []any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return t.statementError(ctx, fn, table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %s", ErrNotFound, table, id)
	}

	return nil
}

func (t *Tables) statementError(ctx context.Context, fn, table string, err error) error {
	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("table", table).
		Str("classification", t.db.errorClassificator.Classify(err).String()).
		Msg("failed to execute statement")

	if t.db.errorClassificator.IsConstraintViolation(err) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (t *Tables) selectOne(ctx context.Context, q querier, def TableDef, id string) (Row, error) {
	builder, err := t.selectBuilder(def, Query{})
	if err != nil {
		return nil, err
	}

	rows, err := t.query(ctx, q, def, builder.Where(sq.Eq{def.Name + ".id": id}))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, def.Name, id)
	}
	return rows[0], nil
}

func (t *Tables) selectBuilder(def TableDef, q Query) (sq.SelectBuilder, error) {
	columns := make([]string, 0, len(def.Columns))
	for _, c := range def.Columns {
		columns = append(columns, def.Name+"."+c)
	}
	for _, j := range def.Joins {
		for _, c := range j.Columns {
			columns = append(columns, fmt.Sprintf("%s.%s AS %s%s%s", j.As, c, j.As, joinSep, c))
		}
	}

	builder := t.db.builder.Select(columns...).From(def.Name)
	for _, j := range def.Joins {
		builder = builder.LeftJoin(fmt.Sprintf("%s AS %s ON %s.id = %s.%s", j.Table, j.As, j.As, def.Name, j.LocalKey))
	}

	if len(q.Eq) > 0 {
		where := sq.Eq{}
		for column, value := range q.Eq {
			if !def.hasColumn(column) {
				return builder, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, def.Name, column)
			}
			where[def.Name+"."+column] = value
		}
		builder = builder.Where(where)
	}

	for _, o := range q.Order {
		if !def.hasColumn(o.Column) {
			return builder, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, def.Name, o.Column)
		}
		direction := "DESC"
		if o.Ascending {
			direction = "ASC"
		}
		builder = builder.OrderBy(def.Name + "." + o.Column + " " + direction)
	}

	return builder, nil
}

func (t *Tables) query(ctx context.Context, q querier, def TableDef, builder sq.SelectBuilder) ([]Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "Tables.query").
			Str("table", def.Name).
			Str("classification", t.db.errorClassificator.Classify(err).String()).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRows(rows, def)
}

// writableValues keeps the writable columns of row, encoding JSON columns.
// Known read-only keys are dropped; anything else is [ErrUnknownColumn].
func writableValues(def TableDef, row Row) (map[string]any, error) {
	values := make(map[string]any, len(row))
	for column, value := range row {
		if !def.isWritable(column) {
			if def.hasColumn(column) || def.isJoin(column) {
				continue
			}
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, def.Name, column)
		}

		if def.isJSON(column) {
			encoded, err := encodeJSONColumn(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPayload, column, err)
			}
			values[column] = encoded
			continue
		}

		switch value.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: %s holds a nested value", ErrInvalidPayload, column)
		}
		values[column] = value
	}
	return values, nil
}

func encodeJSONColumn(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if !json.Valid([]byte(v)) {
			return nil, errors.New("not a JSON document")
		}
		return v, nil
	case json.RawMessage:
		return string(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(data), nil
	}
}
