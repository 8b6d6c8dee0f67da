package http

import (
	"errors"
	"net/http"

	"github.com/certmint/certmint/internal/api/service"
	"github.com/certmint/certmint/pkg/httpx"
)

type VerifyHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Email Verification Endpoint
//	@Description	Redeem the emailed verification token. Verification happens exactly once; replays are rejected.
//	@Tags			Auth
//	@Produce		json
//	@Param			token	query		string			true	"Verification token from the email link"
//	@Success		200		{object}	MessageResponse	"message"
//	@Failure		400		{object}	MessageResponse	"message"
//	@Failure		404		{object}	MessageResponse	"message"
//	@Failure		500		{object}	MsgResponse		"msg, ref"
//	@Router			/api/auth/verify [get].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.URL.Query().Get("token")

	err := h.AuthService.VerifyEmail(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Verification token missing"})
		case errors.Is(err, service.ErrInvalidOrExpiredToken):
			httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid or expired token"})
		case errors.Is(err, service.ErrAlreadyVerified):
			httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Email already verified"})
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, MessageResponse{Message: "User not found"})
		default:
			httpx.WriteInternalError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Email verified successfully"})
}
