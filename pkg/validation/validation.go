// Package validation holds the input shape checks applied at the API
// boundary before any service logic runs.
package validation

import (
	"errors"
	"net/mail"
	"strings"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// minPasswordEntropy is deliberately modest: it blocks trivially guessable
// passwords ("aaaaaa", "123456") without demanding passphrase-grade input.
const minPasswordEntropy = 40

var (
	ErrEmailRequired    = errors.New("validation: email address is required")
	ErrEmailTooLong     = errors.New("validation: email address is too long")
	ErrEmailMalformed   = errors.New("validation: invalid email address format")
	ErrNameRequired     = errors.New("validation: name is required")
	ErrNameLength       = errors.New("validation: name must be between 2 and 50 characters")
	ErrPasswordTooShort = errors.New("validation: password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("validation: password must not exceed 128 characters")
	ErrPasswordWeak     = errors.New("validation: password is too guessable, please choose a stronger one")
)

// Email validates format and length. Uses the stdlib RFC 5322 parser.
func Email(email string) error {
	if email == "" {
		return ErrEmailRequired
	}

	// RFC 5321: 254 characters is the ceiling for a routable address.
	if len(email) > 254 {
		return ErrEmailTooLong
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailMalformed
	}

	return nil
}

// Name validates a display name.
func Name(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if len(trimmed) < 2 || len(trimmed) > 50 {
		return ErrNameLength
	}
	return nil
}

// Password validates password strength: basic length bounds plus an
// entropy estimate so character variety counts for something.
func Password(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	if len(password) > 128 {
		return ErrPasswordTooLong
	}

	if err := passwordvalidator.Validate(password, minPasswordEntropy); err != nil {
		return ErrPasswordWeak
	}

	return nil
}
