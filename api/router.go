package api

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/api/middleware"
	"github.com/replyflow/replyflow-backend/utils"
)

func corsOption(ctx context.Context, env, appUrl string) cors.Config {
	logger := utils.LoggerFromContext(ctx)
	allowedOrigins := []string{}

	if appUrl != "" {
		parsedUrl, err := url.Parse(appUrl)
		switch {
		case err != nil:
			logger.Error("failed to parse APP_URL for CORS, browser requests from the app will be rejected",
				"url", appUrl)
		case !slices.Contains([]string{"http", "https"}, parsedUrl.Scheme):
			logger.Error("APP_URL carries no http(s) scheme, so it cannot be used for CORS",
				"url", appUrl)
		default:
			u := url.URL{Scheme: parsedUrl.Scheme, Host: parsedUrl.Host}
			allowedOrigins = append(allowedOrigins, u.String())
		}
	}

	if env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodDelete, http.MethodPatch,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type", "baggage", "sentry-trace"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func InitRouterMiddlewares(ctx context.Context, env, appUrl string) *gin.Engine {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(cors.New(corsOption(ctx, env, appUrl)))
	r.Use(middleware.NewLogging(logger, "/liveness", "/metrics"))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	return r
}
