// Package config provides centralized configuration management for the importer.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"net/url"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Import   ImportConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
// The connection string is assembled from Host, User, Password and Name.
type DatabaseConfig struct {
	// Host is the PostgreSQL server host (default: localhost)
	Host string `env:"DB_HOST" default:"localhost"`

	// Port is the PostgreSQL server port (default: 5432)
	Port int `env:"DB_PORT" default:"5432"`

	// User is the login role (required)
	User string `env:"DB_USER" required:"true"`

	// Password for User, may be empty for trust/peer auth
	Password string `env:"DB_PASSWORD"`

	// Name is the database name (required)
	Name string `env:"DB_NAME" required:"true"`

	// SSLMode is passed through as the sslmode parameter (default: disable)
	SSLMode string `env:"DB_SSLMODE" default:"disable"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 0)
	MinConns int `env:"DB_MIN_CONNS" default:"0"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ImportConfig holds settings for a single import run.
type ImportConfig struct {
	// FilePath is the customer file to import
	FilePath string `env:"IMPORT_FILE" default:"app/data/base_teste.txt"`

	// Encoding of the input file: utf-8, latin1 or windows-1252 (default: utf-8)
	Encoding string `env:"IMPORT_ENCODING" default:"utf-8"`

	// Timeout bounds the whole run; 0 disables it (default: 0s)
	Timeout time.Duration `env:"IMPORT_TIMEOUT" default:"0s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ConnString returns the PostgreSQL URL built from the individual settings.
// User and password are escaped, so they may contain reserved characters.
func (c *DatabaseConfig) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   c.Addr(),
		Path:   "/" + c.Name,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}

// Addr returns the server address in host:port format.
func (c *DatabaseConfig) Addr() string {
	if c.Port == 0 {
		return c.Host
	}
	return c.Host + ":" + strconv.Itoa(c.Port)
}
