package testhelper

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueCode returns a code that does not collide with other tests sharing the container.
// The prefix keeps related codes adjacent in code order.
func UniqueCode(prefix string) string {
	return strings.ToUpper(prefix + uniqueSuffix())
}

// SeedUser inserts a user with a placeholder password hash and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		Username:     "editor-" + suffix,
		Email:        "editor-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehol",
		Role:         domain.UserRoleUser,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCode inserts a code row with the given condition and returns the code.
func SeedCode(t *testing.T, pool *pgxpool.Pool, code, condition string) string {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO icd_codes (code, condition, billability) VALUES ($1, $2, 'Billable')`,
		code, condition,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCode %s: %v", code, err)
	}

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM icd_codes WHERE code = $1`, code)
	})

	return code
}

// SeedSession inserts a session for userID expiring after ttl.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, ttl time.Duration) domain.Session {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Session{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.UserID, s.ExpiresAt, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}

	return s
}

// CountAudit returns the number of audit entries whose row_id or column_name equals target.
func CountAudit(t *testing.T, pool *pgxpool.Pool, action domain.AuditAction, target string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM audit_logs WHERE action = $1 AND (row_id = $2 OR column_name = $2)`,
		string(action), target,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAudit: %v", err)
	}
	return n
}

// DropColumn removes a column added by a test. Used in t.Cleanup.
func DropColumn(t *testing.T, pool *pgxpool.Pool, column string) {
	t.Helper()

	if err := domain.ValidateIdentifier(column); err != nil {
		t.Fatalf("testhelper: DropColumn: %v", err)
	}
	_, err := pool.Exec(context.Background(),
		fmt.Sprintf(`ALTER TABLE icd_codes DROP COLUMN IF EXISTS %s`, column))
	if err != nil {
		t.Fatalf("testhelper: DropColumn %s: %v", column, err)
	}
}
