package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/certmint/certmint/internal/api/domain"
	httpapi "github.com/certmint/certmint/internal/api/http"
	"github.com/certmint/certmint/internal/api/service"
	"github.com/certmint/certmint/internal/api/store/drivers/sqlite"
	"github.com/certmint/certmint/pkg/cryptox"
	"github.com/certmint/certmint/pkg/idx"
	"github.com/certmint/certmint/pkg/jwtx"
	"github.com/certmint/certmint/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for api end-to-end tests. The full HTTP stack runs
 * in-process against an in-memory sqlite store; outbound email is captured
 * instead of sent.
 *
 * The production rate limits apply, so each test scopes its requests to a
 * dedicated client IP via the X-Forwarded-For header.
 */

const (
	testSecret   = "e2e-test-secret"
	testIssuer   = "certmint"
	testPassword = "correct horse battery"
)

// ipCounter hands out a unique client IP per call so tests do not share
// rate limit buckets.
var ipCounter struct {
	mu sync.Mutex
	n  int
}

func nextIP() string {
	ipCounter.mu.Lock()
	defer ipCounter.mu.Unlock()
	ipCounter.n++
	return fmt.Sprintf("10.1.%d.%d", ipCounter.n/250, ipCounter.n%250+1)
}

// captureMailer records tokens instead of dispatching email.
type captureMailer struct {
	mu           sync.Mutex
	verifyTokens map[string]string // email -> last token
	resetTokens  map[string]string
}

func newCaptureMailer() *captureMailer {
	return &captureMailer{
		verifyTokens: make(map[string]string),
		resetTokens:  make(map[string]string),
	}
}

func (m *captureMailer) SendVerificationEmail(_ context.Context, to, _, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifyTokens[to] = token
	return nil
}

func (m *captureMailer) SendPasswordResetEmail(_ context.Context, to, _, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetTokens[to] = token
	return nil
}

func (m *captureMailer) verifyToken(t *testing.T, email string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.verifyTokens[email]
	require.True(t, ok, "no verification email captured for %s", email)
	return token
}

func (m *captureMailer) resetToken(t *testing.T, email string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.resetTokens[email]
	require.True(t, ok, "no reset email captured for %s", email)
	return token
}

func (m *captureMailer) resetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.resetTokens)
}

// testEnv bundles the running server with the pieces tests poke directly.
type testEnv struct {
	Server *httptest.Server
	Store  *sqlite.Store
	Tokens *jwtx.HS256
	Mailer *captureMailer
}

// setupServer boots the full HTTP stack against a fresh in-memory store.
func setupServer(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := jwtx.NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	mailer := newCaptureMailer()

	logger := slogx.New(slogx.Config{
		Service: "certmint-api",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	authService := &service.AuthService{
		Store:  st,
		Tokens: tokens,
		Mailer: mailer,
	}
	userService := &service.UserService{Store: st}

	router := httpapi.NewRouter(tokens, "test", st, logger)
	router.AuthService = authService
	router.UserService = userService
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		Server: server,
		Store:  st,
		Tokens: tokens,
		Mailer: mailer,
	}
}

// doJSON issues a request with a JSON body (nil for none) and decodes the
// JSON response into a generic map.
func doJSON(t *testing.T, env *testEnv, method, path, ip, bearer string, body any) (int, map[string]any, http.Header) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, env.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("X-Forwarded-For", ip)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := env.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded, resp.Header
}

// decodeJSON decodes a response body into v.
func decodeJSON(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

// registerUser registers an account through the HTTP surface.
func registerUser(t *testing.T, env *testEnv, ip, email, name string) {
	t.Helper()

	status, body, _ := doJSON(t, env, http.MethodPost, "/api/auth/register", ip, "", map[string]string{
		"email":    email,
		"name":     name,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, status, "register response: %v", body)
}

// loginUser logs in and returns the session token.
func loginUser(t *testing.T, env *testEnv, ip, email, password string) string {
	t.Helper()

	status, body, _ := doJSON(t, env, http.MethodPost, "/api/auth/login", ip, "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status, "login response: %v", body)

	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// createAdmin inserts an admin account directly into the store and returns
// its credentials.
func createAdmin(t *testing.T, env *testEnv, email string) (string, string) {
	t.Helper()

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, env.Store.Users().CreateUser(context.Background(), domain.User{
		ID:            idx.New().String(),
		Email:         email,
		Name:          "Admin",
		PasswordHash:  &hash,
		Role:          domain.RoleAdmin,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}))

	return email, testPassword
}
