package handlers

import (
	"net/http"

	apperrors "hackconnect-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the status taxonomy: validation and
// membership conflicts are 400, authorization failures 403, missing entities
// 404, anything else an upstream failure reported as 500 with the upstream
// message passed through.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err), apperrors.IsConflict(err):
		status = http.StatusBadRequest
	case apperrors.IsForbidden(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
}
