package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported document store drivers, selected by the DATABASE_URL scheme.
const (
	DriverMongo    = "mongodb"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	S3       S3Config
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds document store configuration.
// An empty URL means no store is configured.
type DatabaseConfig struct {
	URL            string
	Name           string
	MaxConnections int
	MinConnections int
	ConnectTimeout int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// S3Config holds AWS S3 configuration for catalog seed files.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "seed/")
}

// Load loads configuration from environment variables.
// A .env file in the working directory is read first if present; it never
// overrides variables already set in the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnvAsInt("PORT", 8000),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			Name:           getEnv("DATABASE_NAME", ""),
			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			ConnectTimeout: getEnvAsInt("DB_CONNECT_TIMEOUT", 10),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("SEED_S3_ENABLED", false),
			Bucket:  getEnv("SEED_S3_BUCKET", ""),
			Region:  getEnv("SEED_S3_REGION", "us-east-1"),
			Prefix:  getEnv("SEED_S3_PREFIX", "seed/"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port: %d", c.Server.Port))
	}

	if c.Database.URLSet() {
		if _, err := c.Database.Driver(); err != nil {
			errs = append(errs, err)
		}
	}

	switch {
	case c.Database.MaxConnections < 1:
		errs = append(errs, errors.New("database max connections must be at least 1"))
	case c.Database.MinConnections < 0:
		errs = append(errs, errors.New("database min connections cannot be negative"))
	case c.Database.MinConnections > c.Database.MaxConnections:
		errs = append(errs, errors.New("database min connections cannot exceed max connections"))
	}

	if c.Database.ConnectTimeout < 1 {
		errs = append(errs, errors.New("database connect timeout must be at least 1 second"))
	}

	if !validLogLevels[c.Logger.Level] {
		errs = append(errs, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level))
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		errs = append(errs, fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format))
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("S3 bucket is required when S3 is enabled"))
		}
		if c.S3.Region == "" {
			errs = append(errs, errors.New("S3 region is required when S3 is enabled"))
		}
	}

	return errors.Join(errs...)
}

// Driver returns the document store driver named by the URL scheme.
func (c *DatabaseConfig) Driver() (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "postgres", "postgresql":
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database URL scheme: %q (must be mongodb, mongodb+srv, postgres, or postgresql)", u.Scheme)
	}
}

// URLSet reports whether DATABASE_URL was provided.
func (c *DatabaseConfig) URLSet() bool {
	return c.URL != ""
}

// NameSet reports whether DATABASE_NAME was provided.
func (c *DatabaseConfig) NameSet() bool {
	return c.Name != ""
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
