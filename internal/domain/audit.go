package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an immutable record of one mutation. The actor's username
// and email are copied at write time so later account changes do not alter
// history.
type AuditEntry struct {
	ID         int64
	UserID     *uuid.UUID
	Username   string
	Email      string
	Action     AuditAction
	TableName  string
	ColumnName *string
	RowID      *string
	OldValue   *string
	NewValue   *string
	CreatedAt  time.Time
}

// NewAuditEntry starts an entry for the codes table attributed to p.
func NewAuditEntry(p Principal, action AuditAction) AuditEntry {
	id := p.UserID
	return AuditEntry{
		UserID:    &id,
		Username:  p.Username,
		Email:     p.Email,
		Action:    action,
		TableName: CodesTable,
	}
}
