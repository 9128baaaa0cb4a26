package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevLogin resolves a caller identity from the GARDENER_UID cookie (or a
// ?uid= query param) and stores it in context. Without either it mints a
// fresh dev identity so local use never hits the auth wall. An identity
// already resolved upstream (StrictAuth) is left untouched.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				return next(c)
			}
			uid := ""
			if ck, err := c.Cookie("GARDENER_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = "dev-" + uuid.NewString()
				}
				c.SetCookie(&http.Cookie{Name: "GARDENER_UID", Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
