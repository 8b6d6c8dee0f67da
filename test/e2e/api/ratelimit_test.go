package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginRateLimit(t *testing.T) {
	env := setupServer(t)
	ip := nextIP()

	body := map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever whatever",
	}

	// Burn through the strict burst allowance from a single IP.
	for range 5 {
		status, _, _ := doJSON(t, env, http.MethodPost, "/api/auth/login", ip, "", body)
		require.Equal(t, http.StatusBadRequest, status)
	}

	status, respBody, headers := doJSON(t, env, http.MethodPost, "/api/auth/login", ip, "", body)
	require.Equal(t, http.StatusTooManyRequests, status)
	require.NotEmpty(t, respBody["msg"])
	require.NotEmpty(t, headers.Get("Retry-After"))
	require.NotEmpty(t, headers.Get("X-RateLimit-Limit"))

	// A different client IP is unaffected.
	status, _, _ = doJSON(t, env, http.MethodPost, "/api/auth/login", nextIP(), "", body)
	require.Equal(t, http.StatusBadRequest, status)
}
