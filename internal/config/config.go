// Package config loads server configuration from command-line flags,
// environment variables and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverFile   = "file"
	DriverBadger = "badger"
	DriverSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// IsProduction reports whether the server runs in production.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         string        // default: 3000
	ReadTimeout  time.Duration // default: 15s
	WriteTimeout time.Duration // default: 15s
	IdleTimeout  time.Duration // default: 60s
	CORSOrigins  []string      // default: *
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// StoreConfig selects where the document lives.
type StoreConfig struct {
	Driver string // file, badger or sqlite
	Path   string // file path, or directory for badger
}

// AuthConfig throttles login and registration per client IP.
type AuthConfig struct {
	RateLimit int // requests per minute
	RateBurst int
}

// LoadConfig loads configuration from the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load builds a Config with precedence, highest first:
//  1. Command-line flags.
//  2. Environment variables.
//  3. .env file.
//  4. Default values.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("circular", flag.ContinueOnError)

	env := fs.String("env", "", "Environment (development, staging, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")

	host := fs.String("host", "", "Listen host (default: all interfaces)")
	port := fs.String("port", "", "Server port (default: 3000)")
	readTimeout := fs.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := fs.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := fs.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	corsOrigins := fs.String("cors-origins", "", "Comma-separated allowed origins (default: *)")

	storeDriver := fs.String("store-driver", "", "Document store: file, badger or sqlite (default: file)")
	storePath := fs.String("store-path", "", "Document location (default: data.json)")

	authRateLimit := fs.String("auth-rate-limit", "", "Login/register requests per minute per IP (default: 20)")
	authRateBurst := fs.String("auth-rate-burst", "", "Login/register burst per IP (default: 5)")

	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := loadEnvFile(*envFile); err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Host:        getConfigValue(*host, "HOST", ""),
			Port:        getConfigValue(*port, "PORT", "3000"),
			CORSOrigins: splitList(getConfigValue(*corsOrigins, "CORS_ORIGINS", "*")),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getConfigValue(*storeDriver, "STORE_DRIVER", DriverFile)),
			Path:   getConfigValue(*storePath, "STORE_PATH", "data.json"),
		},
	}

	var err error
	if cfg.Auth.RateLimit, err = getIntConfigValue(*authRateLimit, "AUTH_RATE_LIMIT", 20); err != nil {
		return nil, err
	}
	if cfg.Auth.RateBurst, err = getIntConfigValue(*authRateBurst, "AUTH_RATE_BURST", 5); err != nil {
		return nil, err
	}

	if cfg.Server.ReadTimeout, err = getDurationConfigValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = getDurationConfigValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.Server.IdleTimeout, err = getDurationConfigValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, err
	}

	if cfg.Store.Path, err = expandPath(cfg.Store.Path); err != nil {
		return nil, fmt.Errorf("invalid store path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %q (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", c.Logger.Level)
	}

	switch c.Store.Driver {
	case DriverFile, DriverBadger, DriverSQLite:
	default:
		return fmt.Errorf("invalid store driver: %q (must be file, badger, or sqlite)", c.Store.Driver)
	}

	if c.Store.Path == "" {
		return errors.New("store path cannot be empty")
	}

	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Server.Port, err)
	}

	if c.Auth.RateLimit < 1 || c.Auth.RateBurst < 1 {
		return errors.New("auth rate limit and burst must be positive")
	}

	return nil
}

// expandPath expands a leading ~ and makes the path absolute.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// loadEnvFile loads a .env file into the environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

func getIntConfigValue(flagValue, envKey string, defaultValue int) (int, error) {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", envKey, raw, err)
	}
	return n, nil
}

func getDurationConfigValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	raw := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", envKey, raw, err)
	}
	return d, nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
