package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/apperrors"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidationError(err):
		resp := dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error())
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Details != nil {
			resp.WithDetails(customErr.Details)
		}
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, err.Error()))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeInvalidToken, "Invalid token"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
