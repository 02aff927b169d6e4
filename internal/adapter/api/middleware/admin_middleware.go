package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"piramida/internal/domain/entity"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// AdminOnly gates a route on an authenticated back-office role. It must run
// after Authenticate, which puts the token claims on the context.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get("adminRole").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		switch role {
		case entity.RoleAdmin, entity.RoleManager, entity.RoleSuperAdmin:
			return next(c)
		}
		return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
	}
}

// SuperAdminOnly gates a route on the super-admin role.
func (m *AdminMiddleware) SuperAdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get("adminRole").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}
		if role != entity.RoleSuperAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Super-admin privileges required")
		}
		return next(c)
	}
}
