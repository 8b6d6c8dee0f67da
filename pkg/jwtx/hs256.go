package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign tokens.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
//
// Errors stay granular here so callers can log the real reason; anything
// user-facing must collapse them into a single invalid-or-expired outcome.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrSecretRequired = errors.New("jwtx: signing secret is required")
	ErrMalformed      = errors.New("jwtx: malformed token")
	ErrInvalidSig     = errors.New("jwtx: invalid signature")
	ErrIssuer         = errors.New("jwtx: issuer mismatch")
	ErrExpired        = errors.New("jwtx: token expired")
	ErrNotYetValid    = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim   = errors.New("jwtx: invalid claims")
)

// HS256 signs and verifies tokens with a single process-wide HMAC secret.
// It implements both Signer and Verifier.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 creates an HS256 signer/verifier. An empty secret is a
// configuration error and rejected outright.
func NewHS256(secret, issuer string) (*HS256, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	return &HS256{secret: []byte(secret), issuer: issuer}, nil
}

// Sign takes claims and turns them into a signed compact JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// SignFor is a convenience wrapper minting claims for a subject with the
// given TTL and signing them in one step.
func (h *HS256) SignFor(subject, role string, ttl time.Duration) (string, error) {
	return h.Sign(NewClaims(subject, h.issuer, role, ttl, time.Now().UTC()))
}

// Verify validates the JWT string and returns its parsed Claims.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, fmt.Errorf("%w: %w", ErrExpired, err)
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, fmt.Errorf("%w: %w", ErrNotYetValid, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, fmt.Errorf("%w: %w", ErrInvalidSig, err)
		default:
			return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
