// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DBTX is the interface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries provides typed access to all portfolio tables.
type Queries struct {
	db DBTX
}

// New creates a Queries instance bound to the given database or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries instance bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// ConstraintError reports a uniqueness or foreign-key violation on write.
// Field names the offending column when it can be determined.
type ConstraintError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("constraint violation on %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

// Unwrap returns the underlying driver error.
func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// wrapWriteErr converts SQLite constraint failures into *ConstraintError,
// leaving all other errors untouched.
func wrapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if !strings.Contains(msg, "constraint failed") {
		return err
	}
	return &ConstraintError{Field: constraintField(msg), Err: err}
}

// constraintField extracts the offending column from a SQLite constraint
// error message such as "UNIQUE constraint failed: skills.slug (2067)".
func constraintField(msg string) string {
	for _, prefix := range []string{"UNIQUE constraint failed: ", "NOT NULL constraint failed: ", "CHECK constraint failed: "} {
		idx := strings.Index(msg, prefix)
		if idx < 0 {
			continue
		}
		rest := msg[idx+len(prefix):]
		if end := strings.IndexAny(rest, " ,("); end > 0 {
			rest = rest[:end]
		}
		// Strip the table qualifier
		if dot := strings.LastIndex(rest, "."); dot >= 0 {
			rest = rest[dot+1:]
		}
		return rest
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return "foreign_key"
	}
	return ""
}
