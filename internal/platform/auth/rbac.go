package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that checks if the user has at least one of
// the specified roles. "admin" always passes.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRoles := RolesFromContext(c.Request().Context())
			for _, required := range roles {
				for _, has := range userRoles {
					if has == required || has == "admin" {
						return next(c)
					}
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}

// RequireBranchAccess returns middleware that checks the caller may operate
// on the branch named by the :id route parameter. Callers without a branch
// scope (head office accounts) pass for any branch.
func RequireBranchAccess(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scope := BranchIDFromContext(c.Request().Context())
			if scope == 0 {
				return next(c)
			}
			if c.Param(param) == fmt.Sprintf("%d", scope) {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusForbidden, "branch access denied")
		}
	}
}
