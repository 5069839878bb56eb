// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/gradebook/internal/app/auth"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// AuthController handles login, logout and the menu
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
// @Summary User login
// @Description Checks the credentials and stores the login state in the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Unknown username or wrong password"
// @Failure 503 {object} dto.APIResponse "Database unavailable"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Authenticate(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sess := auth.NewSession(user)
	if err := middleware.SaveSession(ctx, sess); err != nil {
		c.logger.Error().Err(err).Str("username", user.Username).Msg("Failed to save session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccess(sessionResponse(sess), "Login successful"))
}

// Logout handles user logout
// @Summary User logout
// @Description Clears the session cookie. Calling it while logged out is harmless.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	username := middleware.CurrentSession(ctx).Username
	if err := middleware.ClearSession(ctx); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if username != "" {
		c.logger.Info().Str("username", username).Msg("User logged out")
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(sessionResponse(auth.Anonymous), "Logged out"))
}

// Session returns the current login state
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccess(sessionResponse(middleware.CurrentSession(ctx)), ""))
}

// Menu lists every action with whether the current role may use it
// @Summary Action menu
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MenuResponse}
// @Failure 401 {object} dto.APIResponse "Login required"
// @Router /menu [get]
func (c *AuthController) Menu(ctx *gin.Context) {
	sess := middleware.CurrentSession(ctx)

	items := make([]dto.MenuItem, 0, len(auth.Actions))
	for _, a := range auth.Actions {
		items = append(items, dto.MenuItem{
			Key:     a.Key,
			Title:   a.Title,
			Method:  a.Method,
			Path:    a.Path,
			Allowed: auth.Allowed(sess, a),
		})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.MenuResponse{
		Username: sess.Username,
		Role:     sess.Role,
		Items:    items,
	}, ""))
}

func sessionResponse(sess auth.Session) dto.SessionResponse {
	return dto.SessionResponse{
		LoggedIn: sess.LoggedIn,
		Username: sess.Username,
		Role:     sess.Role,
	}
}
