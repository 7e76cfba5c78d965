package infra

import (
	"fmt"
	"net/url"
)

type PgConfig struct {
	ConnectionString   string
	Database           string
	Hostname           string
	Password           string
	Port               string
	User               string
	SslMode            string
	MaxPoolConnections int
}

func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return config.ConnectionString
	}
	connectionString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.User, url.QueryEscape(config.Password), config.Hostname,
		config.Port, config.Database, config.SslMode)
	return connectionString
}
