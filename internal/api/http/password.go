package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/certmint/certmint/internal/api/service"
	"github.com/certmint/certmint/pkg/httpx"
)

type PasswordHandler struct {
	AuthService *service.AuthService
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// HandleForgot godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Start the password reset flow. The response is identical whether or not the address belongs to an account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		forgotPasswordRequest	true	"email"
//	@Success		200		{object}	MsgResponse				"msg"
//	@Failure		400		{object}	MsgResponse				"msg"
//	@Failure		500		{object}	MsgResponse				"msg, ref"
//	@Router			/api/auth/forgot-password [post].
func (h *PasswordHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "invalid request body"})
		return
	}

	if err := h.AuthService.ForgotPassword(ctx, req.Email); err != nil {
		if isValidationError(err) {
			httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: validationMessage(err)})
			return
		}
		httpx.WriteInternalError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MsgResponse{Msg: "Reset password email sent"})
}

// HandleReset godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Redeem a reset token and set a new password. Session tokens minted before the reset stay valid until expiry.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		resetPasswordRequest	true	"token, newPassword"
//	@Success		200		{object}	MsgResponse				"msg"
//	@Failure		400		{object}	MsgResponse				"msg"
//	@Failure		404		{object}	MsgResponse				"msg"
//	@Failure		500		{object}	MsgResponse				"msg, ref"
//	@Router			/api/auth/reset-password [post].
func (h *PasswordHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "invalid request body"})
		return
	}

	if req.Token == "" || req.NewPassword == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "Token and new password are required"})
		return
	}

	err := h.AuthService.ResetPassword(ctx, req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredToken):
			httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "Invalid or expired token"})
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, MsgResponse{Msg: "User not found"})
		case isValidationError(err):
			httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: validationMessage(err)})
		default:
			httpx.WriteInternalError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MsgResponse{Msg: "Password reset successfully"})
}
