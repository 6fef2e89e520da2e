// Package config loads the application configuration from environment variables.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values. Values are populated by Load.
type Config struct {
	// Database holds the MySQL connection parameters. The database is optional,
	// without DBHOST the address book lives in memory only.
	Database Database

	// Port is the TCP port the HTTP service listens on. Defaults to "8080".
	Port string

	// LogLevel is the minimum slog level. Defaults to "info".
	LogLevel string

	// GinLogging turns gin's request logging on or off. GIN_LOGGING=off disables it.
	GinLogging bool
}

// Database holds the MySQL connection parameters.
type Database struct {
	Host     string
	User     string
	Password string
	Name     string
}

// Enabled returns true if a database host is configured.
func (d Database) Enabled() bool { return d.Host != "" }

// DSN returns the go-sql-driver/mysql data source name.
func (d Database) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Name)
}

// Load reads the configuration from the environment.
//
// Usage example:
// > DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 PORT=8080 GIN_LOGGING=off go run main.go
func Load() (Config, error) {
	cfg := Config{
		Database: Database{
			Host:     os.Getenv("DBHOST"),
			User:     os.Getenv("DBUSER"),
			Password: os.Getenv("DBPWD"),
			Name:     getEnv("DBNAME", "test"),
		},
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		GinLogging: !strings.EqualFold(os.Getenv("GIN_LOGGING"), "off"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("could not parse PORT env variable %q: %w", cfg.Port, err)
	}
	if cfg.Database.Enabled() && cfg.Database.User == "" {
		return Config{}, fmt.Errorf("DBUSER must be set when DBHOST is set")
	}
	return cfg, nil
}

// Level returns the configured slog level, falling back to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewLogger returns a JSON logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
