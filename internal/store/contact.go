// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// ContactMessage represents a visitor message submitted through the
// contact endpoint, with request metadata captured at submission time.
type ContactMessage struct {
	ID          int64
	Name        string
	Email       string
	Subject     string
	Message     string
	Status      string
	IPAddress   sql.NullString
	UserAgent   string
	UaSummary   string
	CountryCode sql.NullString
	AdminNotes  sql.NullString
	RepliedAt   sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const contactMessageColumns = `id, name, email, subject, message, status,
	ip_address, user_agent, ua_summary, country_code, admin_notes, replied_at,
	created_at, updated_at`

func scanContactMessage(row rowScanner) (ContactMessage, error) {
	var m ContactMessage
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status,
		&m.IPAddress, &m.UserAgent, &m.UaSummary, &m.CountryCode, &m.AdminNotes, &m.RepliedAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// CreateContactMessageParams holds the fields for CreateContactMessage.
type CreateContactMessageParams struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	IPAddress   sql.NullString
	UserAgent   string
	UaSummary   string
	CountryCode sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateContactMessage inserts a new message with status "new".
func (q *Queries) CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO contact_messages (
		name, email, subject, message,
		ip_address, user_agent, ua_summary, country_code,
		created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING `+contactMessageColumns,
		arg.Name, arg.Email, arg.Subject, arg.Message,
		arg.IPAddress, arg.UserAgent, arg.UaSummary, arg.CountryCode,
		arg.CreatedAt, arg.UpdatedAt,
	)
	m, err := scanContactMessage(row)
	return m, wrapWriteErr(err)
}

// GetContactMessageByID fetches a message by primary key.
func (q *Queries) GetContactMessageByID(ctx context.Context, id int64) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+contactMessageColumns+` FROM contact_messages WHERE id = ?`, id)
	return scanContactMessage(row)
}

// ListContactMessages returns messages, optionally filtered by status,
// newest first.
func (q *Queries) ListContactMessages(ctx context.Context, status string) ([]ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+contactMessageColumns+` FROM contact_messages
		WHERE (? = '' OR status = ?)
		ORDER BY created_at DESC`, status, status)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var messages []ContactMessage
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// UpdateContactMessageStatusParams holds the fields for
// UpdateContactMessageStatus. RepliedAt is set when the status moves to
// replied and left untouched otherwise.
type UpdateContactMessageStatusParams struct {
	ID        int64
	Status    string
	RepliedAt sql.NullTime
	UpdatedAt time.Time
}

// UpdateContactMessageStatus moves a message through its workflow.
func (q *Queries) UpdateContactMessageStatus(ctx context.Context, arg UpdateContactMessageStatusParams) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE contact_messages SET
		status = ?, replied_at = COALESCE(?, replied_at), updated_at = ?
	WHERE id = ?
	RETURNING `+contactMessageColumns,
		arg.Status, arg.RepliedAt, arg.UpdatedAt, arg.ID,
	)
	m, err := scanContactMessage(row)
	return m, wrapWriteErr(err)
}

// UpdateContactMessageNotes sets the admin notes on a message.
func (q *Queries) UpdateContactMessageNotes(ctx context.Context, id int64, notes sql.NullString, updatedAt time.Time) error {
	_, err := q.db.ExecContext(ctx, `UPDATE contact_messages SET admin_notes = ?, updated_at = ? WHERE id = ?`,
		notes, updatedAt, id)
	return err
}

// DeleteContactMessage deletes a message.
func (q *Queries) DeleteContactMessage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	return err
}
