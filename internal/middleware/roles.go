package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route group on membership in the given role set.
// Composing single-role gates would force a user to hold every role at
// once, so routes always declare one explicit set instead.
func RequireRole(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return unauthorized(c)
			}
			if !slices.Contains(required, role) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Access Denied"})
			}
			return next(c)
		}
	}
}
