package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/certmint/certmint/pkg/httpx"
	"github.com/certmint/certmint/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newGuarded(t *testing.T) (*jwtx.HS256, http.Handler) {
	t.Helper()

	tokens, err := jwtx.NewHS256("test-secret", "certmint")
	require.NoError(t, err)

	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := httpx.UserIDFromContext(r.Context())
			require.True(t, ok)
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"user_id": userID})
		}),
		httpx.AuthnMiddleware(tokens),
	)

	return tokens, handler
}

func TestAuthnMiddlewareAcceptsValidToken(t *testing.T) {
	t.Parallel()

	tokens, handler := newGuarded(t)

	token, err := tokens.SignFor("user-1", "student", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthnMiddlewareUniform401(t *testing.T) {
	t.Parallel()

	tokens, handler := newGuarded(t)

	expired, err := tokens.Sign(jwtx.NewClaims("user-1", "certmint", "", time.Minute, time.Now().UTC().Add(-time.Hour)))
	require.NoError(t, err)

	cases := map[string]string{
		"no header":        "",
		"not bearer":       "Basic abc",
		"garbage token":    "Bearer garbage",
		"expired token":    "Bearer " + expired,
		"tampered payload": "Bearer " + expired + "x",
	}

	var bodies []string
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			bodies = append(bodies, rec.Body.String())
		})
	}

	// Every failure mode must be indistinguishable at the boundary.
	for _, body := range bodies {
		require.Equal(t, bodies[0], body)
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	tokens, err := jwtx.NewHS256("test-secret", "certmint")
	require.NoError(t, err)

	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		httpx.AuthnMiddleware(tokens),
		httpx.RequireRole("admin"),
	)

	do := func(role string) int {
		token, err := tokens.SignFor("user-1", role, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, do("admin"))
	require.Equal(t, http.StatusForbidden, do("student"))
	require.Equal(t, http.StatusForbidden, do(""))
}
