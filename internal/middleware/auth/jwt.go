package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/tokens"
)

const (
	emailKey = "email"
	roleKey  = "role"
)

// BearerAuth annotates the request with the identity from the Authorization
// header when one is present and valid. A missing, malformed or expired
// token never rejects the request here: the request simply stays anonymous
// and the per-endpoint guards decide.
func BearerAuth(jwtSecret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				raw := strings.TrimPrefix(header, "Bearer ")
				if claims, err := tokens.AccessClaimsFromToken(raw, jwtSecret); err == nil {
					c.Set(emailKey, claims.Subject)
					c.Set(roleKey, claims.Role)
				}
			}
			return next(c)
		}
	}
}
