package http

import (
	"net/http"

	"github.com/certmint/certmint/internal/api/domain"
	"github.com/certmint/certmint/internal/api/service"
	"github.com/certmint/certmint/pkg/httpx"
	"github.com/certmint/certmint/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleMe godoc
//
//	@Summary		Current User Endpoint
//	@Description	Returns the password-free profile of the authenticated user.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.Profile	"Authenticated user profile"
//	@Failure		401	{object}	MessageResponse	"message"
//	@Failure		500	{object}	MsgResponse		"msg, ref"
//	@Router			/api/user/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok || userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load authenticated user", "user_id", userID, "err", err)
		httpx.WriteInternalError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user.Profile())
}

// HandleList godoc
//
//	@Summary		List Users Endpoint
//	@Description	Returns every account as a password-free profile. Requires the admin role.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Profile	"User profiles, newest first"
//	@Failure		401	{object}	MessageResponse	"message"
//	@Failure		403	{object}	MessageResponse	"message"
//	@Failure		500	{object}	MsgResponse		"msg, ref"
//	@Router			/api/user/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		httpx.WriteInternalError(w, r, err)
		return
	}

	profiles := make([]domain.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}

	httpx.WriteJSON(w, http.StatusOK, profiles)
}
