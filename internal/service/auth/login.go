package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

// Login authenticates by username or email plus password and opens a new
// session. Returns ErrUnauthorized for an unknown identifier or a wrong
// password without telling the two apart.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
		CreatedAt: now,
	}

	token, err := s.jwt.GenerateSessionToken(session.ID, user.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("auth.Login store session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("session_id", session.ID.String()))

	return &LoginResult{Token: token, Session: session, User: user}, nil
}
