package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/vivasaude/vivasaude/config"
	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/user"
	"github.com/vivasaude/vivasaude/pkg/api/errors"
	"github.com/vivasaude/vivasaude/pkg/audit"
	"github.com/vivasaude/vivasaude/pkg/auth"
	"github.com/vivasaude/vivasaude/pkg/metrics"
	"github.com/vivasaude/vivasaude/pkg/models"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db          *ent.Client
	config      *config.Config
	blacklist   *auth.TokenBlacklist
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, auditLogger *audit.Service, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:          db,
		config:      cfg,
		blacklist:   blacklist,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// Register creates a new user account with email and password
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "database_error",
		})
	}

	if exists {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "password_hashing_error",
		})
	}

	newUser, err := h.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetName(req.Name).
		SetRole(user.Role(req.Role)).
		Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "user_creation_error",
		})
	}

	go h.auditLogger.LogUserRegister(context.Background(), newUser.ID)
	if h.metrics != nil {
		h.metrics.RecordUserRegistered()
	}

	token, err := auth.GenerateJWT(
		newUser.ID,
		newUser.Email,
		string(newUser.Role),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  userInfo(newUser),
	})
}

// Login authenticates a user with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			if h.metrics != nil {
				h.metrics.RecordLoginAttempt(false)
			}
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "database_error",
		})
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		if h.metrics != nil {
			h.metrics.RecordLoginAttempt(false)
		}
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	go h.auditLogger.LogUserLogin(context.Background(), u.ID)
	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(true)
	}

	token, err := auth.GenerateJWT(
		u.ID,
		u.Email,
		string(u.Role),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  userInfo(u),
	})
}

// Me returns the current user's information
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "user_not_found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "database_error",
		})
	}

	return c.JSON(http.StatusOK, userInfo(u))
}

// Logout revokes the current JWT token
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "missing_token",
			Message: "No token found in request",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Blacklist TTL matches JWT expiration so revoked tokens age out on their own
	expiration := time.Duration(h.config.JWTExpirationHours) * time.Hour
	if err := h.blacklist.Add(ctx, token, expiration); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "logout_error",
			Message: "Failed to revoke token",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}

func userInfo(u *ent.User) models.UserInfo {
	return models.UserInfo{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          string(u.Role),
		PlanKey:       u.PlanKey,
		EmailVerified: u.EmailVerified,
	}
}
