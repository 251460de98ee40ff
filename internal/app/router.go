package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kruttikastudy/icd-website/internal/config"
	"github.com/kruttikastudy/icd-website/internal/metrics"
	"github.com/kruttikastudy/icd-website/internal/transport/middleware"
	"github.com/kruttikastudy/icd-website/internal/transport/rest"
)

// RouterDeps holds everything the HTTP router serves.
type RouterDeps struct {
	Config        *config.Config
	Logger        *slog.Logger
	Metrics       *metrics.Metrics // nil disables /metrics and request metrics
	RateLimiter   *middleware.RateLimiter
	Authenticator middleware.Authenticator

	Health *rest.HealthHandler
	Search *rest.SearchHandler
	Editor *rest.EditorHandler
	Auth   *rest.AuthHandler
}

// NewRouter builds the chi router with the global middleware stack and the
// public, rate-limited and signed-in route groups.
func NewRouter(d RouterDeps) http.Handler {
	cfg := d.Config
	r := chi.NewRouter()

	var observe middleware.Middleware
	if d.Metrics != nil {
		observe = middleware.Metrics(d.Metrics)
	}

	// Installed with Use so Metrics sees the matched route pattern.
	r.Use(middleware.Chain(
		observe,
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		middleware.Session(cfg.Auth.CookieName, d.Authenticator, d.Logger),
		middleware.Logger(d.Logger, "/health/live", "/health/ready", cfg.Metrics.Path),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", d.Health.Health)
	r.Get("/health/live", d.Health.Live)
	r.Get("/health/ready", d.Health.Ready)
	if d.Metrics != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, d.Metrics.Handler())
	}

	r.Get("/search", d.Search.Search)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(d.RateLimiter.Limit(cfg.RateLimit.AuthPerMinute))
			r.Post("/register", d.Auth.Register)
			r.Post("/login", d.Auth.Login)
		})
		r.Get("/user-status", d.Auth.UserStatus)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/logout", d.Auth.Logout)

			r.Get("/table-columns", d.Editor.TableColumns)
			r.Get("/all-codes", d.Search.AllCodes)
			r.Post("/add-row", d.Editor.AddRow)
			r.Post("/update-cell", d.Editor.UpdateCell)
			r.Post("/delete-row", d.Editor.DeleteRow)
			r.Post("/add-column", d.Editor.AddColumn)
			r.Get("/audit-logs", d.Editor.AuditLogs)
		})
	})

	return r
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}` + "\n"))
}
