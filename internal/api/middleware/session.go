package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/api/metrics"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/ports"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session token.
const SessionCookie = "session_id"

// Context keys set by the Session middleware.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Session is the authentication stage of the access gate: it resolves the
// request's session cookie against the store and injects the session's
// identity into the request context. Requests without a valid, unexpired
// session fail with 401 and never reach the handler. Validation has no side
// effects; expiry is not extended.
func Session(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				metrics.SessionValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			session, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}
			if session == nil {
				metrics.SessionValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			metrics.SessionValidationsTotal.WithLabelValues("valid").Inc()
			c.Set(CtxUserID, session.UserID)
			c.Set(CtxUsername, session.Username)
			c.Set(CtxRole, session.Role)

			return next(c)
		}
	}
}
