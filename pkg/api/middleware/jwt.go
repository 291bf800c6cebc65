package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/pkg/auth"
	"github.com/vivasaude/vivasaude/pkg/models"
)

// JWTMiddleware creates a JWT authentication middleware
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return JWTMiddlewareWithBlacklist(secret, nil, nil)
}

// JWTMiddlewareWithBlacklist creates a JWT authentication middleware with blacklist support
func JWTMiddlewareWithBlacklist(secret string, blacklist *auth.TokenBlacklist, db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header is required",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token_format",
					Message: "Authorization header must be 'Bearer {token}'",
				})
			}

			token = parts[1]

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			claims, err := auth.ValidateJWTWithBlacklist(ctx, token, secret, blacklist)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: err.Error(),
				})
			}

			// Check if user account is deleted (soft delete check)
			if db != nil {
				u, err := db.User.Get(ctx, claims.UserID)
				if err != nil {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "user_not_found",
						Message: "User account not found",
					})
				}

				if u.DeletedAt != nil {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "account_deleted",
						Message: "This account has been deleted",
					})
				}
			}

			// Store token in context for potential logout
			c.Set("token", token)

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("user_audience", claims.CouponAudience)

			return next(c)
		}
	}
}
