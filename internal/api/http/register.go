package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/certmint/certmint/internal/api/service"
	"github.com/certmint/certmint/pkg/httpx"
	"github.com/certmint/certmint/pkg/validation"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new student account. The account starts unverified and a verification link is emailed to the address.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest	true	"email, name, password"
//	@Success		201		{object}	MsgResponse		"msg"
//	@Failure		400		{object}	MsgResponse		"msg"
//	@Failure		500		{object}	MsgResponse		"msg, ref"
//	@Router			/api/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "invalid request body"})
		return
	}

	_, err := h.AuthService.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountExists):
			httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "user already exist"})
		case isValidationError(err):
			httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: validationMessage(err)})
		default:
			httpx.WriteInternalError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, MsgResponse{
		Msg: "user created successfully, check your mail to verify your account",
	})
}

// isValidationError reports whether err came from the input shape checks.
func isValidationError(err error) bool {
	return errors.Is(err, validation.ErrEmailRequired) ||
		errors.Is(err, validation.ErrEmailTooLong) ||
		errors.Is(err, validation.ErrEmailMalformed) ||
		errors.Is(err, validation.ErrNameRequired) ||
		errors.Is(err, validation.ErrNameLength) ||
		errors.Is(err, validation.ErrPasswordTooShort) ||
		errors.Is(err, validation.ErrPasswordTooLong) ||
		errors.Is(err, validation.ErrPasswordWeak)
}
