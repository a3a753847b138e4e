package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"todo-list/internal/logging"
)

// Environment selects how the repository is built
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// Config holds all configuration options for the todo application
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Server      ServerConfig      `toml:"server"`
	Logging     LoggingConfig     `toml:"logging"`
	Application ApplicationConfig `toml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string        `toml:"driver" env:"TODO_DB_DRIVER"`
	Dir            string        `toml:"dir" env:"TODO_DB_DIR"`
	Filename       string        `toml:"filename" env:"TODO_DB_FILENAME"`
	DSN            string        `toml:"dsn" env:"TODO_DB_DSN"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"TODO_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TODO_DB_DIR_PERMISSIONS"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `toml:"addr" env:"TODO_SERVER_ADDR"`
	ReadTimeout     time.Duration `toml:"read_timeout" env:"TODO_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `toml:"write_timeout" env:"TODO_SERVER_WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `toml:"idle_timeout" env:"TODO_SERVER_IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"TODO_SERVER_SHUTDOWN_TIMEOUT"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `toml:"level" env:"TODO_LOG_LEVEL"`
	Format string `toml:"format" env:"TODO_LOG_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Env     Environment   `toml:"env" env:"TODO_ENV"`
	Timeout time.Duration `toml:"timeout" env:"TODO_APP_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Database: DatabaseConfig{
			Driver:         "sqlite",
			Dir:            defaultDBDir,
			Filename:       "todo.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:3000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Application: ApplicationConfig{
			Env:     Production,
			Timeout: 30 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the sqlite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the current value kept.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if driver := os.Getenv("TODO_DB_DRIVER"); driver != "" {
		c.Database.Driver = strings.ToLower(driver)
	}
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if dsn := os.Getenv("TODO_DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TODO_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Server configuration
	if addr := os.Getenv("TODO_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TODO_SERVER_READ_TIMEOUT"); timeout != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(timeout, c.Server.ReadTimeout)
	}
	if timeout := os.Getenv("TODO_SERVER_WRITE_TIMEOUT"); timeout != "" {
		c.Server.WriteTimeout = ParseDurationWithFallback(timeout, c.Server.WriteTimeout)
	}
	if timeout := os.Getenv("TODO_SERVER_IDLE_TIMEOUT"); timeout != "" {
		c.Server.IdleTimeout = ParseDurationWithFallback(timeout, c.Server.IdleTimeout)
	}
	if timeout := os.Getenv("TODO_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout)
	}

	// Logging configuration
	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := os.Getenv("TODO_LOG_FORMAT"); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}

	// Application configuration
	if env := os.Getenv("TODO_ENV"); env != "" {
		c.Application.Env = ParseEnvironment(env)
	}
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Database
	switch c.Database.Driver {
	case "sqlite":
		if c.Application.Env != Testing {
			if c.Database.Dir == "" {
				return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
			}
			if c.Database.Filename == "" {
				return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
			}
		}
	case "mysql":
		if c.Database.DSN == "" {
			return &ConfigError{Field: "database.dsn", Message: "dsn is required for the mysql driver"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: "driver must be sqlite or mysql"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Server
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.timeouts", Message: "read and write timeouts must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Logging
	if !logging.IsValidLevel(c.Logging.Level) {
		return &ConfigError{Field: "logging.level", Message: "level must be debug, info, warn, error or fatal"}
	}
	if !logging.IsValidFormat(c.Logging.Format) {
		return &ConfigError{Field: "logging.format", Message: "format must be text, json or logfmt"}
	}

	// Application
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ParseEnvironment maps a name to an Environment, defaulting to production
func ParseEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development":
		return Development
	case "testing", "test":
		return Testing
	default:
		return Production
	}
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
