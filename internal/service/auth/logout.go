package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/pkg/ctxutil"
)

// Logout revokes the session attached to the request.
// Returns ErrUnauthorized if the context carries no session.
func (s *Service) Logout(ctx context.Context) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.sessions.Revoke(ctx, identity.SessionID, time.Now())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", userID.String()),
		slog.String("session_id", identity.SessionID.String()))
	return nil
}

// Authenticate resolves a session token to its live session.
// Returns ErrUnauthorized if the token is invalid or the session is expired,
// revoked or gone.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetActive(ctx, claims.SessionID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Authenticate: %w", err)
	}

	if session.UserID != claims.UserID {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

// CleanupExpiredSessions removes expired and revoked sessions.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	count, err := s.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int64("count", count))
	}

	return count, nil
}
