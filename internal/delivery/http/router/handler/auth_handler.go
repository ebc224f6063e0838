package handler

import (
	"log/slog"
	"net/http"
	"time"

	"kindling/config"
	deliverycontext "kindling/internal/delivery/context"
	"kindling/internal/delivery/http/middleware"
	"kindling/internal/delivery/http/response"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/service"
	"kindling/internal/infra/metrics"
	"kindling/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	stateCookieName = "github_oauth_state"
	stateCookieTTL  = 10 * time.Minute
)

// AuthHandler drives the GitHub login flow and session lifecycle endpoints.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	oauth    service.OAuthService
	tokenSvc service.SyncTokenService
	cfg      *config.Config
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	uc usecase.AuthUsecase,
	oauth service.OAuthService,
	tokenSvc service.SyncTokenService,
	cfg *config.Config,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		oauth:    oauth,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		recorder: recorder,
		logger:   logger,
	}
}

// Login starts the GitHub OAuth flow. The state value is pinned in a
// short-lived cookie and checked on callback.
func (h *AuthHandler) Login(c echo.Context) error {
	state := uuid.NewString()

	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(stateCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.oauth.BuildAuthorizationURL(state))
}

// Callback completes the OAuth flow: verifies state, exchanges the code for
// the provider profile, upserts the user and issues the session cookie.
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")

	stateCookie, err := c.Cookie(stateCookieName)
	if code == "" || state == "" || err != nil || stateCookie.Value != state {
		return response.BadRequest(c, "OAUTH_STATE_MISMATCH", "Invalid OAuth callback")
	}

	profile, err := h.oauth.ExchangeCode(c.Request().Context(), code)
	if err != nil {
		h.logger.Warn("OAuth code exchange failed", slog.Any("error", err))

		return domainerrors.ErrOAuthFailed
	}

	output, err := h.uc.LoginWithGitHub(c.Request().Context(), profile)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(middleware.ClearSessionCookie(stateCookieName))
	c.SetCookie(middleware.NewSessionCookie(h.cfg.Session.CookieName, output.Token, output.ExpiresAt))
	h.recorder.RecordLogin()

	return c.Redirect(http.StatusFound, "/")
}

// Logout deletes the caller's session and clears the cookie. A missing
// cookie is not an error; logout is idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(h.cfg.Session.CookieName)
	if err == nil && cookie.Value != "" {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(middleware.ClearSessionCookie(h.cfg.Session.CookieName))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"}, "Logout successful")
}

// SyncToken mints the token the client hands to the external sync engine.
func (h *AuthHandler) SyncToken(c echo.Context) error {
	caller, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	token, err := h.tokenSvc.IssueSyncToken(caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Sync token issued")
}
