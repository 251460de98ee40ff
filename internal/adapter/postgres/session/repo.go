// Package session implements the login session repository using PostgreSQL.
// A session row backs every issued session cookie; revoking the row ends the
// session even while the cookie's token is still unexpired.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/kruttikastudy/icd-website/internal/adapter/postgres"
	"github.com/kruttikastudy/icd-website/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO sessions (id, user_id, expires_at, created_at)
VALUES ($1, $2, $3, $4)`

// Joins the owner so the principal snapshot comes back in one round trip.
const getActiveSQL = `
SELECT s.id, s.user_id, u.username, u.email, s.expires_at, s.revoked_at, s.created_at
FROM sessions s
JOIN users u ON u.id = s.user_id
WHERE s.id = $1 AND s.revoked_at IS NULL AND s.expires_at > $2`

const revokeSQL = `
UPDATE sessions
SET revoked_at = $2
WHERE id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM sessions
WHERE expires_at <= $1 OR revoked_at IS NOT NULL`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create persists a new session.
func (r *Repo) Create(ctx context.Context, s *domain.Session) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		s.ID, s.UserID, s.ExpiresAt, s.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "session", s.ID.String())
	}
	return nil
}

// Revoke marks a session revoked. Revoking an unknown or already revoked
// session returns domain.ErrNotFound.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeSQL, id, at)
	if err != nil {
		return postgres.MapError(err, "session", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteExpired removes sessions that expired at or before now, and revoked ones.
// Returns the number of deleted rows.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetActive returns an unrevoked, unexpired session with its owner's identity.
// Any other state yields domain.ErrNotFound.
func (r *Repo) GetActive(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Session, error) {
	var row sessionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getActiveSQL, id, now); err != nil {
		return nil, postgres.MapError(err, "session", id.String())
	}

	s := row.toDomain()
	return &s, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type sessionRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Username  string     `db:"username"`
	Email     string     `db:"email"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r sessionRow) toDomain() domain.Session {
	return domain.Session{
		ID:        r.ID,
		UserID:    r.UserID,
		Username:  r.Username,
		Email:     r.Email,
		ExpiresAt: r.ExpiresAt,
		RevokedAt: r.RevokedAt,
		CreatedAt: r.CreatedAt,
	}
}
