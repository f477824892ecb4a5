// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/app/services"
	"github.com/studentvault/backend/internal/middleware"
	"github.com/studentvault/backend/internal/pkg/docstore"
)

// AuthController handles registration and the session lifecycle endpoints.
type AuthController struct {
	authService *services.AuthService
	docs        docstore.DocumentStore
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, docs docstore.DocumentStore, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		docs:        docs,
		logger:      logger,
	}
}

// Register handles user registration. The request is multipart: profile
// fields plus the id card file under "idCard".
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("idCard")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Id card file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	idCardRef, err := c.docs.Save(fileHeader, "idcards")
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to store id card")
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req, idCardRef)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Failed to register user")
		// The stored id card is orphaned on failure; cleanup is best effort.
		if delErr := c.docs.Delete(idCardRef); delErr != nil {
			c.logger.Warn().Err(delErr).Msg("Failed to remove orphaned id card")
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.NewUserResponse(user),
	})
}

// Login authenticates a user and returns an access/refresh token pair.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tokenResponse, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: tokenResponse,
	})
}

// Logout clears the caller's refresh token slot.
func (c *AuthController) Logout(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), userID); err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Logout failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Logged out"},
	})
}

// Refresh exchanges a valid refresh token for a new access token.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid refresh request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tokenResponse, err := c.authService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Token refresh failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: tokenResponse,
	})
}
