package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/user"
)

// RequireAdmin middleware ensures the authenticated user has the admin role.
// This middleware should be applied AFTER JWT authentication middleware.
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get user ID from context (set by JWT middleware)
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "user_not_found",
					"message": "User not found",
				})
			}

			if u.Role != user.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "insufficient_permissions",
					"message": "Admin access required",
					"details": map[string]interface{}{
						"required_role": "admin",
						"current_role":  u.Role.String(),
					},
				})
			}

			c.Set("user_role", u.Role.String())

			return next(c)
		}
	}
}
