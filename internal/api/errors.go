package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/types"
	"go.uber.org/zap"
)

// respondError is the single place service errors become HTTP statuses.
// Anything unrecognized is logged and hidden behind a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status, detail := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, service.ErrUserNotFound):
		status, detail = http.StatusNotFound, "User not found"
	case errors.Is(err, service.ErrFoodNotFound):
		status, detail = http.StatusNotFound, "Food not found"
	case errors.Is(err, service.ErrConflict):
		status, detail = http.StatusBadRequest, "Username or Email already registered"
	case errors.Is(err, service.ErrPasswordTooLong):
		status, detail = http.StatusBadRequest, "password must be at most 72 bytes"
	case errors.Is(err, service.ErrInvalidCredentials):
		status, detail = http.StatusUnauthorized, "Invalid Email or Password"
	case errors.Is(err, service.ErrPredictionFailed):
		detail = "Model prediction failed"
	case errors.Is(err, context.DeadlineExceeded):
		status, detail = http.StatusServiceUnavailable, "Request timed out"
		logger.Warn("request deadline exceeded", zap.String("path", c.FullPath()), zap.Error(err))
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, types.ErrorResponse{Detail: detail})
}

func badRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrorResponse{Detail: detail})
}

// bindJSON binds and validates the body, answering 400 on failure.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		badRequest(c, validationMessage(err))
		return false
	}
	return true
}

// userIDParam parses the :user_id path segment, answering 400 if it is not
// a UUID.
func userIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		badRequest(c, "Invalid user_id")
		return uuid.Nil, false
	}
	return id, true
}
