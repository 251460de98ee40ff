// Package audit implements the audit log repository using PostgreSQL.
// It provides append-only operations: there is no update or delete path, and
// the table itself rejects both.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/kruttikastudy/icd-website/internal/adapter/postgres"
	"github.com/kruttikastudy/icd-website/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const auditColumns = `id, user_id, username, email, action, table_name, column_name, row_id, old_value, new_value, created_at`

const createSQL = `
INSERT INTO audit_logs (user_id, username, email, action, table_name, column_name, row_id, old_value, new_value)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at`

const listRecentSQL = `
SELECT ` + auditColumns + `
FROM audit_logs
ORDER BY id DESC
LIMIT $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit entry and returns it with its id and timestamp.
// The actor's username and email are stored by value.
func (r *Repo) Create(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	if !entry.Action.IsValid() {
		return domain.AuditEntry{}, domain.NewValidationError("action", fmt.Sprintf("unknown audit action %q", entry.Action))
	}
	if entry.TableName == "" {
		entry.TableName = domain.CodesTable
	}

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		entry.UserID,
		nullIfEmpty(entry.Username),
		nullIfEmpty(entry.Email),
		string(entry.Action),
		entry.TableName,
		entry.ColumnName,
		entry.RowID,
		entry.OldValue,
		entry.NewValue,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return domain.AuditEntry{}, postgres.MapError(err, "audit_entry", string(entry.Action))
	}

	return entry, nil
}

// Log creates an audit entry without returning it.
// Satisfies editor.auditLogger.
func (r *Repo) Log(ctx context.Context, entry domain.AuditEntry) error {
	_, err := r.Create(ctx, entry)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListRecent returns the latest limit entries, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listRecentSQL, limit); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	entries := make([]domain.AuditEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type auditRow struct {
	ID         int64      `db:"id"`
	UserID     *uuid.UUID `db:"user_id"`
	Username   *string    `db:"username"`
	Email      *string    `db:"email"`
	Action     string     `db:"action"`
	TableName  string     `db:"table_name"`
	ColumnName *string    `db:"column_name"`
	RowID      *string    `db:"row_id"`
	OldValue   *string    `db:"old_value"`
	NewValue   *string    `db:"new_value"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r auditRow) toDomain() domain.AuditEntry {
	return domain.AuditEntry{
		ID:         r.ID,
		UserID:     r.UserID,
		Username:   deref(r.Username),
		Email:      deref(r.Email),
		Action:     domain.AuditAction(r.Action),
		TableName:  r.TableName,
		ColumnName: r.ColumnName,
		RowID:      r.RowID,
		OldValue:   r.OldValue,
		NewValue:   r.NewValue,
		CreatedAt:  r.CreatedAt,
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
