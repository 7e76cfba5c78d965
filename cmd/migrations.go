package cmd

import (
	"context"

	"github.com/driveline/rental-backend/infra"
	"github.com/driveline/rental-backend/repositories"
	"github.com/driveline/rental-backend/utils"
)

func RunMigrations() error {
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:         "rental",
		Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
		SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	loggingFormat := utils.GetEnv("LOGGING_FORMAT", "text")

	logger := utils.NewLogger(loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	return repositories.RunMigrations(ctx, pgConfig.GetConnectionString())
}
