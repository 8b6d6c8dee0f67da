package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTLs. Session tokens are hours-scale; the email-bound tokens
// get their own lifetimes so expiry is an intentional choice per flow.
const (
	DefaultSessionTTL       = 2 * time.Hour
	DefaultEmailVerifyTTL   = 24 * time.Hour
	DefaultPasswordResetTTL = 1 * time.Hour
)

// Claims are the token claims used across the service. Subject carries the
// user id; Role is only set on session tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Role of the authenticated user ("student", "admin", "instructor").
	Role string `json:"role,omitempty"`
}

// NewClaims builds minimally-correct claims for a subject.
func NewClaims(subject, issuer, role string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
