package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/replyflow/replyflow-backend/api"
	"github.com/replyflow/replyflow-backend/infra"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

type serverConfig struct {
	env    string
	appUrl string

	pgConnectionString string
	firebaseProjectId  string
	graphApiUrl        string
	sentryDsn          string
	apiVersion         string

	api api.Configuration

	jwtSigningKey      string
	tokenLifetime      time.Duration
	allowGuestFallback bool
}

func loadServerConfig() serverConfig {
	return serverConfig{
		env:                utils.GetEnv("ENV", "development"),
		appUrl:             utils.GetEnv("APP_URL", ""),
		pgConnectionString: utils.GetRequiredEnv[string]("PG_CONNECTION_STRING"),
		firebaseProjectId:  utils.GetRequiredEnv[string]("FIREBASE_PROJECT_ID"),
		graphApiUrl:        utils.GetEnv("GRAPH_API_URL", "https://graph.instagram.com"),
		sentryDsn:          utils.GetEnv("SENTRY_DSN", ""),
		apiVersion:         utils.GetEnv("API_VERSION", "dev"),
		api: api.Configuration{
			Host:           utils.GetEnv("HOST", "0.0.0.0"),
			Port:           utils.GetEnv("PORT", "8080"),
			RequestTimeout: time.Duration(utils.GetEnv("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		jwtSigningKey:      utils.GetEnv("SESSION_JWT_SIGNING_KEY", ""),
		tokenLifetime:      time.Duration(utils.GetEnv("TOKEN_LIFETIME_HOURS", 24)) * time.Hour,
		allowGuestFallback: utils.GetEnv("ALLOW_GUEST_FALLBACK", false),
	}
}

func runServer(ctx context.Context, conf serverConfig) error {
	logger := utils.LoggerFromContext(ctx)

	infra.SetupSentry(conf.sentryDsn, conf.env, conf.apiVersion)

	// Identifies this instance in NOTIFY payloads, so the change listener
	// can drop its own round-trips.
	instanceId := uuid.NewString()

	pool, err := infra.NewPostgresConnectionPool(ctx, conf.pgConnectionString, instanceId)
	if err != nil {
		return err
	}
	defer pool.Close()

	repos := repositories.NewRepositories(
		pool,
		conf.firebaseProjectId,
		infra.InitializeFirebase(ctx, conf.firebaseProjectId),
		conf.graphApiUrl,
		http.DefaultClient,
	)

	jwtRepository := repositories.NewJwtRepository(
		infra.ParseOrGenerateSigningKey(conf.jwtSigningKey))

	uc := usecases.NewUsecases(repos, repos.ExecutorGetter, jwtRepository, usecases.Options{
		TokenLifetime:      conf.tokenLifetime,
		AllowGuestFallback: conf.allowGuestFallback,
	})

	// Bridge row-change notifications from other instances into the local
	// notifier, and invalidate cached automation engines as they arrive.
	listener := repositories.NewChangeListener(pool, uc.Notifier, instanceId)
	go func() {
		if err := listener.Listen(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorContext(ctx, "change listener stopped", "error", err.Error())
		}
	}()
	uc.StartChangeWatchers(ctx)

	router := api.InitRouterMiddlewares(ctx, conf.env, conf.appUrl)
	auth := api.NewAuthentication(uc.NewTokenValidator())
	server := api.NewServer(router, conf.api, uc, auth)

	go func() {
		logger.InfoContext(ctx, fmt.Sprintf("starting server on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error serving the api", "error", err.Error())
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the api server")
	flag.Parse()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx, stop := signal.NotifyContext(
		utils.StoreLoggerInContext(context.Background(), logger),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *shouldRunMigrations {
		connectionString := utils.GetRequiredEnv[string]("PG_CONNECTION_STRING")
		if err := repositories.RunMigrations(connectionString, logger); err != nil {
			log.Fatalf("error running migrations: %v", err)
		}
	}

	if *shouldRunServer {
		if err := runServer(ctx, loadServerConfig()); err != nil {
			log.Fatalf("error running server: %v", err)
		}
	}
}
