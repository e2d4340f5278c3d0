package api

import (
	"encoding/json"
	"net/http"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/service"
)

type ProviderSignInRequest struct {
	IDToken string `json:"idToken"`
}

type PasswordSignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AssignRoleRequest struct {
	Role entity.Role `json:"role"`
}

type TokensResponse struct {
	FirstEnter   bool   `json:"firstEnter"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func tokensResponse(tokens entity.UserTokens) TokensResponse {
	return TokensResponse{
		FirstEnter:   tokens.IsFirstEnter,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
}

// SignInWithProvider godoc
// @Summary      Sign in with an external identity provider token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ProviderSignInRequest true "Provider ID token"
// @Success      200 {object} TokensResponse
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError "Email domain is not allowed"
// @Router       /auth/provider [post]
func (h *Handler) SignInWithProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProviderSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	tokens, err := h.s.SignInWithProvider(ctx, req.IDToken)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, tokensResponse(tokens))
}

// SignInWithPassword godoc
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body PasswordSignInRequest true "Credentials"
// @Success      200 {object} TokensResponse
// @Failure      401 {object} ResponseError
// @Router       /auth/sign-in [post]
func (h *Handler) SignInWithPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PasswordSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	tokens, err := h.s.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, tokensResponse(tokens))
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh token"
// @Success      200 {object} TokensResponse
// @Failure      401 {object} ResponseError
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	tokens, err := h.s.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, tokensResponse(tokens))
}

// AssignRole godoc
// @Summary      Pick a dashboard role for a first time account
// @Description  Works once per account and returns a fresh token pair carrying the role.
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body AssignRoleRequest true "Role"
// @Success      200 {object} TokensResponse
// @Failure      403 {object} ResponseError "Admin cannot be self assigned"
// @Failure      409 {object} ResponseError "Role already assigned"
// @Router       /auth/role [post]
func (h *Handler) AssignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	var req AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	tokens, err := h.s.AssignRole(ctx, user.ID, req.Role)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, tokensResponse(tokens))
}

// SignOut godoc
// @Summary      Revoke all refresh tokens of the current user
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/sign-out [post]
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	if err := h.s.SignOut(ctx, user.ID); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} entity.User
// @Router       /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	profile, err := h.s.CurrentUser(ctx, user.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, profile)
}

// Menu godoc
// @Summary      Sidebar menu for the current role
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.MenuItem
// @Router       /menu [get]
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	SendJSON(ctx, w, http.StatusOK, service.MenuForRole(user.Role))
}
