package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/driveline/rental-backend/api"
	"github.com/driveline/rental-backend/infra"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/usecases"
	"github.com/driveline/rental-backend/utils"
)

func RunServer() error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "rental-backend",
		Port:                utils.GetRequiredEnv[string]("PORT"),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		TokenLifetimeMinute: utils.GetEnv("TOKEN_LIFETIME_MINUTE", 60*24),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "rental",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", 20),
	}
	serverConfig := struct {
		jwtSigningKey     string
		jwtSigningKeyFile string
		loggingFormat     string
		sentryDsn         string
		firebaseProjectId string
		adminEmail        string
		adminPassword     string
	}{
		jwtSigningKey:     utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		jwtSigningKeyFile: utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY_FILE", ""),
		loggingFormat:     utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:         utils.GetEnv("SENTRY_DSN", ""),
		firebaseProjectId: utils.GetEnv("FIREBASE_PROJECT_ID", ""),
		adminEmail:        utils.GetEnv("CREATE_ADMIN_EMAIL", ""),
		adminPassword:     utils.GetEnv("CREATE_ADMIN_PASSWORD", ""),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	jwtSigningKey := infra.ReadParseOrGenerateSigningKey(ctx,
		serverConfig.jwtSigningKey, serverConfig.jwtSigningKeyFile)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repositoryOptions := []repositories.Option{}
	if serverConfig.firebaseProjectId != "" {
		messagingClient := infra.InitializeFirebaseMessaging(ctx, serverConfig.firebaseProjectId)
		repositoryOptions = append(repositoryOptions,
			repositories.WithPushSender(repositories.NewFirebaseMessagingSender(messagingClient)))
	}

	repos := repositories.NewRepositories(pool, jwtSigningKey, repositoryOptions...)
	uc := usecases.NewUsecases(repos,
		usecases.WithTokenLifetime(time.Duration(apiConfig.TokenLifetimeMinute)*time.Minute))

	seedUsecase := uc.NewSeedUsecase()
	if serverConfig.adminEmail != "" && serverConfig.adminPassword != "" {
		if err := seedUsecase.SeedAdminUser(ctx, serverConfig.adminEmail, serverConfig.adminPassword); err != nil {
			return errors.Wrap(err, "could not seed admin user")
		}
	}
	if err := seedUsecase.SeedDefaultMenu(ctx); err != nil {
		return errors.Wrap(err, "could not seed default menu")
	}

	auth := api.NewAuthentication(repos.JwtRepository)
	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc, auth)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", apiConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "error serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
