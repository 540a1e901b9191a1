package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	domainerr "github.com/Akachukwuu/earnquiza/internal/domain/error"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RequireBearerToken rejects requests without a valid Authorization header.
// When apiToken is empty any non-empty bearer token is accepted, which keeps
// local development frictionless.
func RequireBearerToken(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   domainerr.CodeForbidden,
				Message: "Missing bearer token",
			})
			return
		}

		if apiToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   domainerr.CodeForbidden,
				Message: "Invalid bearer token",
			})
			return
		}

		c.Next()
	}
}
