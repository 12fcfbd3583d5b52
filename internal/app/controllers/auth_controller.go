package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/services"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/middleware"
)

// AuthController handles demo authentication
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// DemoLogin issues a demo token for the supplied identity
// @Summary Demo login
// @Description Signs a token that a viewer may present when joining the realtime channel. No route requires it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.DemoLoginRequest true "Identity"
// @Success 200 {object} dto.DemoLoginResponse
// @Failure 400 {object} dto.ErrorResponse "Name and user type are required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/demo-login [post]
func (c *AuthController) DemoLogin(ctx *gin.Context) {
	c.logger.Debug().Msg("Demo login endpoint called")

	var req dto.DemoLoginRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	resp, err := c.authService.DemoLogin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
