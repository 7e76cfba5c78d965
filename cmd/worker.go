package cmd

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/driveline/rental-backend/infra"
	"github.com/driveline/rental-backend/jobs"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/usecases"
	"github.com/driveline/rental-backend/utils"
)

// RunJobScheduler runs the cron worker: overdue bookings and fleet expiry
// alerts.
func RunJobScheduler() error {
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "rental",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", 10),
	}
	workerConfig := struct {
		env               string
		jwtSigningKey     string
		jwtSigningKeyFile string
		loggingFormat     string
		sentryDsn         string
		firebaseProjectId string
	}{
		env:               utils.GetEnv("ENV", "development"),
		jwtSigningKey:     utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		jwtSigningKeyFile: utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY_FILE", ""),
		loggingFormat:     utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:         utils.GetEnv("SENTRY_DSN", ""),
		firebaseProjectId: utils.GetEnv("FIREBASE_PROJECT_ID", ""),
	}

	logger := utils.NewLogger(workerConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	jwtSigningKey := infra.ReadParseOrGenerateSigningKey(ctx,
		workerConfig.jwtSigningKey, workerConfig.jwtSigningKeyFile)

	infra.SetupSentry(workerConfig.sentryDsn, workerConfig.env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repositoryOptions := []repositories.Option{}
	if workerConfig.firebaseProjectId != "" {
		messagingClient := infra.InitializeFirebaseMessaging(ctx, workerConfig.firebaseProjectId)
		repositoryOptions = append(repositoryOptions,
			repositories.WithPushSender(repositories.NewFirebaseMessagingSender(messagingClient)))
	}

	repos := repositories.NewRepositories(pool, jwtSigningKey, repositoryOptions...)
	uc := usecases.NewUsecases(repos)

	jobs.RunScheduler(ctx, uc)
	return nil
}
