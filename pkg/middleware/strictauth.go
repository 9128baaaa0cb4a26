package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StrictAuth is the production-mode identity check. When enabled it
// requires an X-Gardener-Uid header or GARDENER_UID cookie and 401s
// without one; when disabled it passes through (DevLogin handles dev).
func StrictAuth(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-Gardener-Uid")
			if uid == "" {
				if ck, err := c.Cookie("GARDENER_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing caller identity"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
