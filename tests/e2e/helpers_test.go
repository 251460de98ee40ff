//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/kruttikastudy/icd-website/internal/adapter/postgres"
	"github.com/kruttikastudy/icd-website/internal/adapter/postgres/audit"
	"github.com/kruttikastudy/icd-website/internal/adapter/postgres/codes"
	"github.com/kruttikastudy/icd-website/internal/adapter/postgres/session"
	"github.com/kruttikastudy/icd-website/internal/adapter/postgres/testhelper"
	userrepo "github.com/kruttikastudy/icd-website/internal/adapter/postgres/user"
	"github.com/kruttikastudy/icd-website/internal/app"
	authpkg "github.com/kruttikastudy/icd-website/internal/auth"
	"github.com/kruttikastudy/icd-website/internal/config"
	"github.com/kruttikastudy/icd-website/internal/metrics"
	authsvc "github.com/kruttikastudy/icd-website/internal/service/auth"
	"github.com/kruttikastudy/icd-website/internal/service/editor"
	"github.com/kruttikastudy/icd-website/internal/service/search"
	"github.com/kruttikastudy/icd-website/internal/transport/middleware"
	"github.com/kruttikastudy/icd-website/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL  string
	Pool *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application router backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "icd-test",
			SessionTTL:       time.Hour,
			CookieName:       "icd_session",
			PasswordHashCost: 4,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Content-Type",
			AllowCredentials: true,
			MaxAge:           60,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	txm := postgres.NewTxManager(pool)
	codeRepo := codes.New(pool)
	auditRepo := audit.New(pool)
	m := metrics.New()

	authService := authsvc.NewService(logger, userrepo.New(pool), session.New(pool),
		authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), cfg.Auth)
	searchService := search.NewService(logger, codeRepo)
	editorService := editor.NewService(logger, codeRepo, auditRepo, auditRepo, txm, m)

	rl := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)

	router := app.NewRouter(app.RouterDeps{
		Config:        cfg,
		Logger:        logger,
		Metrics:       m,
		RateLimiter:   rl,
		Authenticator: authService,
		Health:        rest.NewHealthHandler(pool, codeRepo, "test-version"),
		Search:        rest.NewSearchHandler(searchService, logger),
		Editor:        rest.NewEditorHandler(editorService, logger),
		Auth:          rest.NewAuthHandler(authService, cfg.Auth, logger),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool}
}

// client returns an HTTP client with its own cookie jar, i.e. a browser.
func (ts *testServer) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

// signedInClient registers a fresh user, logs in and returns the client
// holding the session cookie together with the username.
func (ts *testServer) signedInClient(t *testing.T) (*http.Client, string) {
	t.Helper()

	c := ts.client(t)
	username := "coder-" + uuid.NewString()[:8]
	password := "correct horse battery"

	status, _ := ts.postJSON(t, c, "/api/register", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.postJSON(t, c, "/api/login", map[string]any{
		"identifier": username,
		"password":   password,
	})
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)

	return c, username
}

// postJSON sends body as JSON and decodes the JSON response into a map.
func (ts *testServer) postJSON(t *testing.T, c *http.Client, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := c.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// getJSON issues a GET and decodes the JSON response into out.
func (ts *testServer) getJSON(t *testing.T, c *http.Client, path string, out any) int {
	t.Helper()

	resp, err := c.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}
