// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by table and repository methods. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when an update or delete targets an id that
	// does not exist.
	ErrNotFound = errors.New("row was not found")

	// ErrUnknownTable is returned for a table name with no definition.
	ErrUnknownTable = errors.New("unknown table")

	// ErrUnknownColumn is returned when a payload, filter or order names a
	// column the table does not have.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidPayload is returned when a payload is not a JSON object (or
	// array of objects) or carries a value a column cannot hold.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrNothingToUpdate is returned when a patch carries no writable column.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrConflict is returned when the database rejects a write on a
	// constraint (unique key, foreign key, not null, check).
	ErrConflict = errors.New("constraint violation")

	// ErrUnsupportedDriver is returned by [Connect] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction for a bulk insert.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a bulk insert fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
