//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/library-backend/internal/app"
	authpkg "github.com/heartmarshall/library-backend/internal/auth"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/metrics"
	"github.com/heartmarshall/library-backend/internal/transport/middleware"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        testJWTSecret,
			JWTIssuer:        testJWTIssuer,
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  720 * time.Hour,
			PasswordHashCost: 4,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, CleanupInterval: time.Minute},
		Lending:   config.LendingConfig{MaxOutstanding: 2, LoanPeriod: 14 * 24 * time.Hour},
		Score:     config.ScoreConfig{Min: 1, Max: 5},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, metrics.New(), limiter))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(testJWTSecret, testJWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is like do but decodes the body into a map.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()
	status, raw := ts.do(t, method, path, body, token)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}

// doList is like do but decodes a JSON array body.
func (ts *testServer) doList(t *testing.T, path, token string) []map[string]any {
	t.Helper()
	status, raw := ts.do(t, http.MethodGet, path, nil, token)
	require.Equal(t, http.StatusOK, status, "body: %s", raw)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// tokenFor returns a valid access token for a seeded user.
func (ts *testServer) tokenFor(t *testing.T, u domain.User) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(u.ID, string(u.Role))
	require.NoError(t, err)
	return tok
}

// seedMember inserts a regular user and returns it with a token.
func (ts *testServer) seedMember(t *testing.T) (domain.User, string) {
	t.Helper()
	u := testhelper.SeedUser(t, ts.Pool)
	return u, ts.tokenFor(t, u)
}

// seedAdmin inserts an admin user and returns it with a token.
func (ts *testServer) seedAdmin(t *testing.T) (domain.User, string) {
	t.Helper()
	u := testhelper.SeedAdmin(t, ts.Pool)
	return u, ts.tokenFor(t, u)
}

// seedBook inserts an author and a book, returning the book ID as a string.
func (ts *testServer) seedBook(t *testing.T) string {
	t.Helper()
	return testhelper.SeedBook(t, ts.Pool).ID.String()
}

func errorCode(body map[string]any) string {
	code, _ := body["code"].(string)
	return code
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func mustUUID(t *testing.T, v any) uuid.UUID {
	t.Helper()
	s, ok := v.(string)
	require.True(t, ok, "expected string id, got %T", v)
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
