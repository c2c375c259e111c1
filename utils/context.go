package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/models"
)

type ContextKey int

const (
	ContextKeyCredentials ContextKey = iota
	ContextKeyLogger
)

func CredentialsFromCtx(ctx context.Context) models.Credentials {
	creds, _ := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			StoreLoggerInContext(c.Request.Context(), logger))
		c.Next()
	}
}
