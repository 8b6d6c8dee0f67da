package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	env := setupServer(t)
	ip := nextIP()

	status, body, _ := doJSON(t, env, http.MethodPost, "/api/auth/register", ip, "", map[string]string{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "user created successfully, check your mail to verify your account", body["msg"])

	// A verification email was dispatched for the new account.
	require.NotEmpty(t, env.Mailer.verifyToken(t, "alice@example.com"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupServer(t)
	ip := nextIP()

	registerUser(t, env, ip, "dup@example.com", "First")

	status, body, _ := doJSON(t, env, http.MethodPost, "/api/auth/register", ip, "", map[string]string{
		"email":    "dup@example.com",
		"name":     "Second",
		"password": testPassword,
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "user already exist", body["msg"])
}

func TestRegisterRejectsBadInput(t *testing.T) {
	env := setupServer(t)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"malformed email", map[string]string{"email": "nope", "name": "Alice", "password": testPassword}},
		{"short name", map[string]string{"email": "a@example.com", "name": "A", "password": testPassword}},
		{"weak password", map[string]string{"email": "a@example.com", "name": "Alice", "password": "123456"}},
		{"missing everything", map[string]string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body, _ := doJSON(t, env, http.MethodPost, "/api/auth/register", nextIP(), "", tc.body)
			require.Equal(t, http.StatusBadRequest, status)
			require.NotEmpty(t, body["msg"])
		})
	}
}
