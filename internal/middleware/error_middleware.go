package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Every member of
// the authentication error family produces the same undifferentiated 401 so
// responses do not leak whether an account exists or which check failed.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAuthError(err):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication failed"),
		})
		return
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username already exists"),
		})
		return
	case errors.Is(err, apperrors.ErrEmailTaken):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"),
		})
		return
	case errors.Is(err, apperrors.ErrPasswordTooShort):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Password needs to have at least 6 chars"),
		})
		return
	case errors.Is(err, apperrors.ErrInvalidMobileNumber):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Mobile number must be exactly 10 digits"),
		})
		return
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error()),
		})
		return
	case errors.Is(err, apperrors.ErrRecordNotFound), errors.Is(err, apperrors.ErrPlacementNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
		return
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error()),
		})
		return
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
		return
	}
}
