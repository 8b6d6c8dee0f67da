package http

import (
	"strings"

	"github.com/certmint/certmint/internal/api/domain"
)

// MsgResponse is the generic `{msg}` body used by the auth endpoints.
type MsgResponse struct {
	Msg string `json:"msg" example:"Reset password email sent"`
}

// MessageResponse is the `{message}` body used by the verification endpoint.
type MessageResponse struct {
	Message string `json:"message" example:"Email verified successfully"`
}

// LoginResponse carries the session token and the password-free profile.
type LoginResponse struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}

// validationMessage strips the package prefix off a validation error so the
// client sees a plain sentence.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "validation: ")
}
