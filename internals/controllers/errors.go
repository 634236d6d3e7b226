package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Typical-techno/investigation-backend/internals/utils"

	"github.com/gin-gonic/gin"
)

// respondError translates a business-rule failure into its HTTP shape.
// Anything outside the taxonomy is logged server-side and surfaced as a
// generic 500 so internals never leak to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, utils.ErrApprovalRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account pending approval"})
	case errors.Is(err, utils.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, utils.ErrInvalidOrExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
	case errors.Is(err, utils.ErrUntrustedDomain):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrDelivery):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
