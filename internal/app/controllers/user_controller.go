package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studentvault/backend/internal/app/models"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/app/services"
	"github.com/studentvault/backend/internal/middleware"
	"github.com/studentvault/backend/internal/pkg/docstore"
)

// UserController handles profile and placement endpoints.
type UserController struct {
	userService *services.UserService
	docs        docstore.DocumentStore
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, docs docstore.DocumentStore, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		docs:        docs,
		logger:      logger,
	}
}

// GetProfile returns the authenticated user's profile.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewUserResponse(user),
	})
}

// UpdateProfile applies a partial update to mutable profile fields.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewUserResponse(user),
	})
}

// UpdateProfileImage replaces the profile image. The file travels under
// "image" in multipart content.
func (c *UserController) UpdateProfileImage(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	imageRef, err := c.docs.Save(fileHeader, "images")
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to store profile image")
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.UpdateProfileImage(ctx.Request.Context(), userID, imageRef)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewUserResponse(user),
	})
}

// AttachPlacement creates a placement record and binds it to the slot named
// in the path. The supporting doc travels under "doc" in multipart content.
func (c *UserController) AttachPlacement(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	slot, err := strconv.Atoi(ctx.Param("slot"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Placement slot must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.PlacementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err := req.Validate(); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	docRef, err := saveDoc(ctx, c.docs, "placements")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Supporting doc is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	placement, err := c.userService.AttachPlacement(ctx.Request.Context(), userID, slot, &req, docRef)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Int("slot", slot).Msg("Placement attach failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: placement,
	})
}

// UpdatePlacement applies a partial update to a placement record.
func (c *UserController) UpdatePlacement(ctx *gin.Context) {
	if _, ok := middleware.CurrentUserID(ctx); !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	placementID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || placementID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Placement id must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.PlacementUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	placement, err := c.userService.UpdatePlacement(ctx.Request.Context(), placementID, &models.PlacementPatch{
		Company: req.Company,
		Role:    req.Role,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: placement,
	})
}
