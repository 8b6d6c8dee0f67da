package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHS256RejectsEmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256("", "certmint")
	require.ErrorIs(t, err, ErrSecretRequired)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := NewHS256("test-secret", "certmint")
	require.NoError(t, err)

	token, err := h.SignFor("user-123", "student", time.Hour)
	require.NoError(t, err)

	claims, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "student", claims.Role)
	require.Equal(t, "certmint", claims.Issuer)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	h, err := NewHS256("test-secret", "certmint")
	require.NoError(t, err)

	token, err := h.Sign(NewClaims("user-123", "certmint", "", time.Minute, time.Now().UTC().Add(-time.Hour)))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256("secret-a", "certmint")
	require.NoError(t, err)
	verifier, err := NewHS256("secret-b", "certmint")
	require.NoError(t, err)

	token, err := signer.SignFor("user-123", "", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256("test-secret", "someone-else")
	require.NoError(t, err)
	verifier, err := NewHS256("test-secret", "certmint")
	require.NoError(t, err)

	token, err := signer.SignFor("user-123", "", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	h, err := NewHS256("test-secret", "certmint")
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := h.Verify(token)
		require.Error(t, err)
	}
}
