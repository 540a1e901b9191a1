package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/Akachukwuu/earnquiza/internal/domain/error"
	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseUserID extracts and validates the userId path parameter. On failure
// it writes a 400 response and returns ok=false.
func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerr.CodeInvalidRequest,
			Message: "Invalid user ID format",
		})
		return uuid.Nil, false
	}
	return userID, true
}

// respondWithError maps domain errors onto HTTP status codes
func respondWithError(c *gin.Context, logger coreport.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case domainerr.IsCooldownError(err):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domainerr.ErrRequestNotPending):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domainerr.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case domainerr.IsInsufficientBalanceError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Error:   domainerr.ErrorID(err),
		Message: message,
	})
}
