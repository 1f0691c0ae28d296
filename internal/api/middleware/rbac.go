package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC returns a gate closed over an immutable set of permitted roles.
// It expects Auth to have run first; an absent role claim is forbidden
// just like a role outside the set.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access denied, you do not have permission for this action")
			}
			return next(c)
		}
	}
}
