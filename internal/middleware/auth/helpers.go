package auth

import "github.com/labstack/echo/v4"

// Email returns the authenticated caller's email, if any.
func Email(c echo.Context) (string, bool) {
	v, ok := c.Get(emailKey).(string)
	return v, ok && v != ""
}

// Role returns the authenticated caller's role, if any.
func Role(c echo.Context) (string, bool) {
	v, ok := c.Get(roleKey).(string)
	return v, ok && v != ""
}
