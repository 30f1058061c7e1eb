//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/visaletter-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/visaletter-backend/internal/adapter/provider/stub"
	"github.com/heartmarshall/visaletter-backend/internal/app"
	"github.com/heartmarshall/visaletter-backend/internal/config"
	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/internal/metrics"
)

const (
	jwtSecret = "e2e-secret-at-least-32-chars-long!!"
	jwtIssuer = "https://idp.test/"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application handler with the stub generator,
// backed by a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth:        config.AuthConfig{JWTSecret: jwtSecret, Issuer: jwtIssuer},
		Generation:  config.GenerationConfig{Provider: config.ProviderStub, Timeout: 10 * time.Second},
		Entitlement: config.EntitlementConfig{FreeLettersLimit: 3, UnlimitedTiers: []string{"unlimited"}},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,Idempotency-Key",
			MaxAge:         86400,
		},
	}

	handler, stop := app.NewHandler(cfg, logger, pool, stub.New(), metrics.New())
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// tokenFor signs an identity-provider token for u.
func tokenFor(t *testing.T, u domain.User) string {
	t.Helper()
	return signToken(t, u.ID, u.Email)
}

func signToken(t *testing.T, subject, email string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        subject,
		"email":      email,
		"given_name": "Test",
		"iss":        jwtIssuer,
		"iat":        now.Unix(),
		"exp":        now.Add(15 * time.Minute).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return tok
}

// call sends a JSON request and returns status + decoded body.
func (ts *testServer) call(t *testing.T, method, path, token string, body any, headers ...string) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func generateBody(profileID, country, letterType string) map[string]any {
	return map[string]any{"profileId": profileID, "country": country, "letterType": letterType}
}
