package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cabin-reservation/internal/auth"
	"github.com/iliyamo/cabin-reservation/internal/config"
	"github.com/iliyamo/cabin-reservation/internal/model"
	"github.com/iliyamo/cabin-reservation/internal/repository"
)

const stateCookie = "oauth_state"

// AuthHandler implements the OAuth sign-in flow and session
// management. There are no passwords anywhere: identity comes from the
// external provider and the guest record is provisioned lazily on
// first sign-in.
type AuthHandler struct {
	Cfg      config.Config
	Provider *auth.Provider
	Guests   *repository.GuestRepo
	Sessions *repository.SessionRepo
}

func NewAuthHandler(cfg config.Config, p *auth.Provider, g *repository.GuestRepo, s *repository.SessionRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Provider: p, Guests: g, Sessions: s}
}

// ----- DTOs -----

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	Guest   model.Guest `json:"guest"`
	Access  tokenPart   `json:"access"`
	Refresh tokenPart   `json:"refresh"`
}

// Login handles GET /v1/auth/login. It parks a fresh state value in a
// short-lived cookie and redirects to the identity provider.
func (h *AuthHandler) Login(c echo.Context) error {
	state := auth.NewState()
	c.SetCookie(&http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/v1/auth",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, h.Provider.AuthURL(state))
}

// rejectSignIn logs the underlying cause and answers 401. Sign-in
// failures are always rejections, never propagated as server errors.
func rejectSignIn(c echo.Context, cause string, err error) error {
	log.Printf("auth: sign-in rejected: %s: %v", cause, err)
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sign-in failed"})
}

// Callback handles GET /v1/auth/callback. It verifies the state round
// trip, exchanges the code, loads the provider profile, ensures a guest
// record exists for the email and issues the session token pair. The
// access token's subject is the internal guest identifier.
func (h *AuthHandler) Callback(c echo.Context) error {
	cookie, err := c.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != c.QueryParam("state") {
		return rejectSignIn(c, "state mismatch", err)
	}
	code := c.QueryParam("code")
	if code == "" {
		return rejectSignIn(c, "missing code", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	tok, err := h.Provider.Exchange(ctx, code)
	if err != nil {
		return rejectSignIn(c, "code exchange failed", err)
	}
	prof, err := h.Provider.FetchProfile(ctx, tok)
	if err != nil {
		return rejectSignIn(c, "profile fetch failed", err)
	}

	guest, err := auth.EnsureGuest(ctx, h.Guests, prof)
	if err != nil {
		return rejectSignIn(c, "guest provisioning failed", err)
	}

	access, err := auth.NewAccessToken(h.Cfg.JWTSecret, auth.SessionClaims{
		GuestID: guest.ID,
		Email:   prof.Email,
		Name:    prof.Name,
		Picture: prof.Picture,
	}, h.Cfg.AccessTTLMin)
	if err != nil {
		return rejectSignIn(c, "issue access failed", err)
	}
	refresh, err := auth.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return rejectSignIn(c, "issue refresh failed", err)
	}
	if err := h.Sessions.StoreRefresh(ctx, guest.ID, auth.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return rejectSignIn(c, "save refresh failed", err)
	}

	return c.JSON(http.StatusOK, authResp{
		Guest:   guest,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}

// Refresh handles POST /v1/auth/refresh: validate by hash, revoke the
// old token and issue a new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := auth.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	guestID, err := h.Sessions.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Sessions.RevokeByHash(ctx, hash)

	guest, err := h.Guests.GetByID(ctx, guestID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load guest failed"})
	}

	access, err := auth.NewAccessToken(h.Cfg.JWTSecret, auth.SessionClaims{
		GuestID: guest.ID,
		Email:   guest.Email,
		Name:    guest.FullName,
	}, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	newRef, err := auth.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Sessions.StoreRefresh(ctx, guest.ID, auth.HashRefreshRaw(newRef.Raw), newRef.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Guest:   guest,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: newRef.Raw, Expires: newRef.Exp},
	})
}

// Logout handles POST /v1/auth/logout. A refresh token in the body
// terminates that single session; 204 on success.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := auth.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Sessions.ValidateRefresh(ctx, hash); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	if err := h.Sessions.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /v1/account/me: it echoes the session claims attached
// by the JWT middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"guest_id": c.Get("guest_id"),
		"email":    c.Get("email"),
		"name":     c.Get("name"),
		"picture":  c.Get("picture"),
	})
}
