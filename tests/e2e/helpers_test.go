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

	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/quiz"
	revisionrepo "github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/revision"
	subjectrepo "github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/subject"
	"github.com/heartmarshall/revision-planner-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/revision-planner-backend/internal/app"
	authpkg "github.com/heartmarshall/revision-planner-backend/internal/auth"
	"github.com/heartmarshall/revision-planner-backend/internal/config"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Owner  uuid.UUID
	Svcs   app.Services
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application against the shared postgres
// container. Each server gets its own placeholder owner so tests do not see
// each other's documents.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	store := &app.Store{
		Driver:     config.DriverPostgres,
		Subjects:   subjectrepo.New(pool),
		Revisions:  revisionrepo.New(pool),
		Flashcards: flashcard.New(pool),
		Quizzes:    quiz.New(pool),
		Audit:      audit.New(pool),
		Tx:         postgres.NewTxManager(pool),
		Pinger:     pool,
	}

	owner := uuid.New()
	cfg := &config.Config{
		Server: config.ServerConfig{APIPrefix: "/api"},
		Auth: config.AuthConfig{
			JWTSecret:      jwtSecret,
			JWTIssuer:      jwtIssuer,
			AccessTokenTTL: 15 * time.Minute,
			AllowAnonymous: true,
		},
		Planner: config.PlannerConfig{
			DeleteMode:          string(domain.DeleteModeCascade),
			ListScope:           string(domain.ListScopeOwner),
			SyncMode:            string(domain.SyncModeCreate),
			SeedOnCreate:        true,
			DefaultTimerMinutes: 25,
			DefaultOwner:        owner,
			Location:            time.UTC,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
	}

	svcs := app.NewServices(logger, store, cfg.Planner)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, store, svcs, nil))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Owner:  owner,
		Svcs:   svcs,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
	}
}

// tokenFor returns a bearer token naming userID.
func (ts *testServer) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	tok, err := ts.jwt.GenerateToken(userID)
	require.NoError(t, err)
	return tok
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, reader)
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

// doJSON is do followed by decoding the body into T.
func doJSON[T any](t *testing.T, ts *testServer, method, path string, body any, token string) (int, T) {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	var v T
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &v), "body: %s", raw)
	}
	return status, v
}

// today is the plan day the server uses for "today".
func today() string {
	return domain.Today(time.Now(), time.UTC).String()
}

// createSubject creates a subject through the API and returns its document.
func createSubject(t *testing.T, ts *testServer, name, token string) map[string]any {
	t.Helper()

	status, subj := doJSON[map[string]any](t, ts, http.MethodPost, "/api/subjects", map[string]any{"name": name}, token)
	require.Equal(t, http.StatusCreated, status)
	return subj
}
