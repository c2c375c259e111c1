package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

// presentError maps the sentinel error taxonomy onto HTTP status codes.
// Returns true when a response was written.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error",
			"error", err.Error())
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return true
}
