// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/middleware"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/apperrors"
)

// bindJSON decodes the request body into req. An empty body binds as an
// empty request so the service can report which fields are missing. Any other
// decode failure is answered with 400 and reported as false.
func bindJSON(ctx *gin.Context, req interface{}, logger zerolog.Logger) bool {
	err := ctx.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	logger.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Invalid request payload")
	middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request format"))
	return false
}
