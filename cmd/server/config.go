package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hairizuanbinnoorazman/coffee-shop/cmd/server/handlers"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	// ErrInvalidPort is returned when server.port is outside 1..65535.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidPath is returned when an endpoint path is empty, relative or duplicated.
	ErrInvalidPath = errors.New("invalid path")

	// ErrEmptyComponent is returned when health.component is blank.
	ErrEmptyComponent = errors.New("empty component name")

	// ErrInvalidTimeout is returned when a required timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Health  HealthConfig
	Metrics MetricsConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// HealthConfig holds probe endpoint configuration.
type HealthConfig struct {
	Component     string
	ReadinessPath string
	LivenessPath  string
}

// MetricsConfig holds Prometheus endpoint configuration.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// envFiles are loaded, when present, before the environment is read.
// Variables already set in the process take precedence.
var envFiles = []string{".env", ".env.local"}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Enable environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("health.component", "coffee-shop")
	v.SetDefault("health.readiness_path", "/health/ready")
	v.SetDefault("health.liveness_path", "/health/live")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("log.level", "info")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; using defaults
	}

	var config Config

	config.Server.Host = v.GetString("server.host")
	config.Server.Port = v.GetInt("server.port")
	config.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	config.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	config.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")

	config.Health.Component = strings.TrimSpace(v.GetString("health.component"))
	config.Health.ReadinessPath = v.GetString("health.readiness_path")
	config.Health.LivenessPath = v.GetString("health.liveness_path")

	config.Metrics.Enabled = v.GetBool("metrics.enabled")
	config.Metrics.Path = v.GetString("metrics.path")

	config.Log.Level = v.GetString("log.level")

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server.shutdown_timeout=%s must be positive", ErrInvalidTimeout, c.Server.ShutdownTimeout)
	}
	if c.Health.Component == "" {
		return ErrEmptyComponent
	}

	paths := map[string]string{
		"health.readiness_path": c.Health.ReadinessPath,
		"health.liveness_path":  c.Health.LivenessPath,
	}
	if c.Metrics.Enabled {
		paths["metrics.path"] = c.Metrics.Path
	}

	// Routes registered regardless of configuration.
	seen := map[string]string{
		handlers.VersionPath: "version endpoint",
	}
	if c.Health.ReadinessPath != handlers.ReadyzAlias {
		seen[handlers.ReadyzAlias] = "readiness alias"
	}

	for key, p := range paths {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: %s=%q must start with /", ErrInvalidPath, key, p)
		}
		if other, ok := seen[p]; ok {
			return fmt.Errorf("%w: %s and %s both use %q", ErrInvalidPath, other, key, p)
		}
		seen[p] = key
	}

	return nil
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
