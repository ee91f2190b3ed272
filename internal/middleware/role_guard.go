package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleが許可リストにあるかを確認します。

func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Not authorized"))
			}

			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, errorResponse{
					Error: "forbidden",
					Msg:   fmt.Sprintf("Role (%s) is not allowed to access this resource", role),
				})
			}

			return next(c)
		}
	}
}
