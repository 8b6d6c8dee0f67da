package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/certmint/certmint/internal/api/service"
	"github.com/certmint/certmint/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password. Every credential failure returns the same body so responses reveal nothing about which part was wrong.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"email, password"
//	@Success		201		{object}	LoginResponse	"token, user"
//	@Failure		400		{object}	MsgResponse		"msg"
//	@Failure		500		{object}	MsgResponse		"msg, ref"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "invalid request body"})
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "Invalid credentials"})
		case errors.Is(err, service.ErrEmailNotVerified):
			httpx.WriteJSON(w, http.StatusBadRequest, MsgResponse{Msg: "Email not verified"})
		default:
			httpx.WriteInternalError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, LoginResponse{
		Token: token,
		User:  user.Profile(),
	})
}
