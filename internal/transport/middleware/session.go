package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/pkg/ctxutil"
)

// UnauthorizedMessage is the body error text of every 401 response.
const UnauthorizedMessage = "Unauthorized. Please sign in."

// Authenticator resolves a session token to its live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Session resolves the session cookie into a user id and identity on the
// request context. A missing, invalid, expired or revoked session leaves
// the request anonymous; RequireAuth decides whether that is acceptable.
func Session(cookieName string, auth Authenticator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			session, err := auth.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.ErrorContext(r.Context(), "session lookup failed",
						slog.String("error", err.Error()))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), session.UserID)
			ctx = ctxutil.WithIdentity(ctx, ctxutil.Identity{
				SessionID: session.ID,
				Username:  session.Username,
				Email:     session.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests without a signed-in user with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, UnauthorizedMessage)
			return
		}
		next.ServeHTTP(w, r)
	})
}
