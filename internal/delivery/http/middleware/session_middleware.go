package middleware

import (
	"net/http"
	"time"

	"kindling/config"
	deliverycontext "kindling/internal/delivery/context"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the session cookie to a user before dispatch.
type SessionMiddleware struct {
	auth       usecase.AuthUsecase
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		auth:       auth,
		cookieName: cfg.Session.CookieName,
	}
}

// Authenticate validates the session cookie. Requests without a live session
// fail with UNAUTHENTICATED; an expired cookie is cleared on the way out. The
// cookie expiry is re-stamped from the session so sliding renewal reaches the
// browser.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated
		}

		user, session, err := m.auth.ValidateSession(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}
		if user == nil || session == nil {
			c.SetCookie(ClearSessionCookie(m.cookieName))

			return domainerrors.ErrUnauthenticated
		}

		c.SetCookie(NewSessionCookie(m.cookieName, cookie.Value, session.ExpiresAt))
		deliverycontext.SetUserID(c, user.ID)

		return next(c)
	}
}

// NewSessionCookie builds the session cookie for a raw bearer token.
func NewSessionCookie(name, token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie builds an immediately-expiring session cookie.
func ClearSessionCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
