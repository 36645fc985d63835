package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/tokens"
	"github.com/labstack/echo/v4"
)

const (
	CtxUser = "user"
	CtxRole = "role"
)

type Auth struct {
	Tokens *tokens.Service
	Users  *repo.UserRepo
}

// RequireAuth extracts the Bearer token, verifies it and resolves the
// user before the handler runs. Every failure collapses into the same
// 401 body, nothing about the cause leaks to the client.
func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c.Request().Header.Get("Authorization"))
		if raw == "" {
			return unauthorized(c)
		}

		userID, err := m.Tokens.Verify(raw, time.Now())
		if err != nil {
			return unauthorized(c)
		}

		user, err := m.Users.GetByID(c.Request().Context(), userID)
		if err != nil {
			return unauthorized(c)
		}

		c.Set(CtxUser, user)
		c.Set(CtxRole, user.Role)

		return next(c)
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
}

// UserFromContext returns the user attached by RequireAuth.
func UserFromContext(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(CtxUser).(*models.User)
	return user, ok
}
