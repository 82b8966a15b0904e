package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Port int `yaml:"port"`
	// LogLevel is debug, info or release. info and release both run gin in
	// release mode; debug enables gin's route and request logging.
	LogLevel string `yaml:"log_level"`
	// Catalog is an optional path to a YAML catalog replacing the built-in one
	Catalog       string        `yaml:"catalog"`
	MetricsConfig MetricsConfig `yaml:"metrics"`
	Auth          AuthConfig    `yaml:"auth"`
	CORS          CORSConfig    `yaml:"cors"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// AuthConfig enables bearer-token checks on the API when a secret is set
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// CORSConfig lists the origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Port:     5000,
		LogLevel: "info",
		MetricsConfig: MetricsConfig{
			Enabled: true,
			Port:    9090,
			Path:    "/metrics",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads the configuration file at path on top of the defaults. An empty
// path yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		// A metrics block without a path keeps the default one
		if cfg.MetricsConfig.Path == "" {
			cfg.MetricsConfig.Path = Default().MetricsConfig.Path
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if secret := os.Getenv("PANTRY_JWT_SECRET"); secret != "" {
		c.Auth.JWTSecret = secret
	}
	if port := os.Getenv("PANTRY_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PANTRY_PORT %q: %w", port, err)
		}
		c.Port = p
	}
	return nil
}

// Validate checks the configuration for values the server cannot start with
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "release":
	default:
		return fmt.Errorf("unknown log_level: %q", c.LogLevel)
	}
	if c.MetricsConfig.Enabled {
		if c.MetricsConfig.Port <= 0 || c.MetricsConfig.Port > 65535 {
			return fmt.Errorf("metrics port out of range: %d", c.MetricsConfig.Port)
		}
		if c.MetricsConfig.Port == c.Port {
			return errors.New("metrics port must differ from the API port")
		}
		if !strings.HasPrefix(c.MetricsConfig.Path, "/") {
			return fmt.Errorf("metrics path must start with /: %q", c.MetricsConfig.Path)
		}
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("cors origin must be * or start with http:// or https://: %q", origin)
		}
	}
	return nil
}
