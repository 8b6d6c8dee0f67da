package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyEmailFlow(t *testing.T) {
	env := setupServer(t)
	ip := nextIP()

	registerUser(t, env, ip, "verify@example.com", "Verifier")
	token := env.Mailer.verifyToken(t, "verify@example.com")

	path := "/api/auth/verify?token=" + url.QueryEscape(token)

	status, body, _ := doJSON(t, env, http.MethodGet, path, ip, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Email verified successfully", body["message"])

	// Redeeming the same token again is rejected.
	status, body, _ = doJSON(t, env, http.MethodGet, path, ip, "", nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Email already verified", body["message"])
}

func TestVerifyEmailBadTokens(t *testing.T) {
	env := setupServer(t)
	ip := nextIP()

	// Missing token.
	status, body, _ := doJSON(t, env, http.MethodGet, "/api/auth/verify", ip, "", nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Verification token missing", body["message"])

	// Garbage token gets the same generic message an expired one would.
	status, body, _ = doJSON(t, env, http.MethodGet, "/api/auth/verify?token=garbage", ip, "", nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Invalid or expired token", body["message"])
}
