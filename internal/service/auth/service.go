package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kruttikastudy/icd-website/internal/auth"
	"github.com/kruttikastudy/icd-website/internal/config"
	"github.com/kruttikastudy/icd-website/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetActive(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Session, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateSessionToken(sessionID, userID uuid.UUID, expiresAt time.Time) (string, error)
	ValidateSessionToken(token string) (auth.SessionClaims, error)
}

// Service implements registration, login and session management.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		jwt:      jwt,
		cfg:      cfg,
	}
}
