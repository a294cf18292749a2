package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/api/middleware"
)

// ctxIdentity extracts the session identity injected by the Session
// middleware. A missing username means the middleware did not run on this
// route; treat the request as unauthenticated rather than panicking.
func ctxIdentity(c echo.Context) (username, role string, err error) {
	username, _ = c.Get(middleware.CtxUsername).(string)
	if username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}
	role, _ = c.Get(middleware.CtxRole).(string)
	return username, role, nil
}
