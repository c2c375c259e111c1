package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type credentialsValidator interface {
	Validate(ctx context.Context, sessionToken string) (models.Credentials, error)
}

type Authentication struct {
	validator credentialsValidator
}

func NewAuthentication(validator credentialsValidator) Authentication {
	return Authentication{validator: validator}
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header")
	}
	return strings.TrimSpace(token), nil
}

// Middleware validates the session token and stores the credentials and an
// enriched logger on the request context.
func (a Authentication) Middleware(c *gin.Context) {
	token, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		presentError(c.Request.Context(), c, err)
		c.Abort()
		return
	}

	creds, err := a.validator.Validate(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, models.UnAuthorizedError) {
			err = errors.Join(models.UnAuthorizedError, err)
		}
		presentError(c.Request.Context(), c, err)
		c.Abort()
		return
	}

	newContext := context.WithValue(c.Request.Context(), utils.ContextKeyCredentials, creds)
	logger := utils.LoggerFromContext(newContext).With(
		slog.String("email", creds.Email),
		slog.String("role", string(creds.Role)))
	newContext = context.WithValue(newContext, utils.ContextKeyLogger, logger)

	c.Request = c.Request.WithContext(newContext)
	c.Next()
}
