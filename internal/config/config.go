// Package config loads the YAML configuration shared by the CLI and the
// server.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/logging"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidFormat  = errors.New("invalid config format")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Config is the full configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Solver SolverConfig `yaml:"solver"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
	Export ExportConfig `yaml:"export"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// RateLimit is the number of requests per second allowed per client.
	RateLimit int `yaml:"rate_limit"`
	// Burst is the number of requests a client may make at once.
	Burst           int           `yaml:"burst"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SolverConfig configures the search.
type SolverConfig struct {
	MaxIterations int `yaml:"max_iterations"`
}

// CacheConfig configures the report registry. Size 0 disables caching.
type CacheConfig struct {
	Size int `yaml:"size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ExportConfig configures report persistence.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			RateLimit:       20,
			Burst:           40,
			ShutdownTimeout: 5 * time.Second,
		},
		Solver: SolverConfig{MaxIterations: rc.DefaultMaxIterations},
		Cache:  CacheConfig{Size: 128},
		Log:    LogConfig{Level: "info", Format: "console"},
		Export: ExportConfig{Dir: "reports", Format: "json"},
	}
}

// Load reads path over the defaults. Environment variables in the file are
// expanded. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("access config file: %w", err)
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, cfg)
}

// Parse decodes YAML data over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem in c.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("server.rate_limit must be non-negative"))
	}
	if c.Server.RateLimit > 0 && c.Server.Burst < 1 {
		errs = append(errs, errors.New("server.burst must be positive when rate limiting"))
	}
	if c.Solver.MaxIterations < 1 {
		errs = append(errs, errors.New("solver.max_iterations must be positive"))
	}
	if c.Cache.Size < 0 {
		errs = append(errs, errors.New("cache.size must be non-negative"))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of trace, debug, info, warn, error", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("log.format %q is not json or console", c.Log.Format))
	}
	if c.Export.Format != "json" && c.Export.Format != "yaml" {
		errs = append(errs, fmt.Errorf("export.format %q is not json or yaml", c.Export.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Logging returns the logger configuration.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	return cfg
}
