package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	CORS struct {
		AllowedOrigins   []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
		AllowCredentials bool     `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	} `yaml:"cors"`

	Realtime struct {
		LiveStatsInterval  string `yaml:"live_stats_interval" env:"REALTIME_LIVE_STATS_INTERVAL"`
		ActivityInterval   string `yaml:"activity_interval" env:"REALTIME_ACTIVITY_INTERVAL"`
		MentorshipInterval string `yaml:"mentorship_interval" env:"REALTIME_MENTORSHIP_INTERVAL"`
		SendBuffer         int    `yaml:"send_buffer" env:"REALTIME_SEND_BUFFER"`
	} `yaml:"realtime"`

	Auth struct {
		DemoTokenSecret     string `yaml:"demo_token_secret" env:"AUTH_DEMO_TOKEN_SECRET"`
		DemoTokenExpiration string `yaml:"demo_token_expiration" env:"AUTH_DEMO_TOKEN_EXPIRATION"`
		Issuer              string `yaml:"issuer" env:"AUTH_ISSUER"`
	} `yaml:"auth"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; defaults and env vars are enough to boot
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"

	// Origins used by the frontend dev servers
	config.CORS.AllowedOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	config.CORS.AllowCredentials = true

	config.Realtime.LiveStatsInterval = "5s"
	config.Realtime.ActivityInterval = "8s"
	config.Realtime.MentorshipInterval = "12s"
	config.Realtime.SendBuffer = 256

	config.Auth.DemoTokenSecret = "seswa-demo-secret"
	config.Auth.DemoTokenExpiration = "24h"
	config.Auth.Issuer = "seswa.portal"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Auth.DemoTokenSecret == "" {
		return fmt.Errorf("demo token secret is required")
	}

	if config.IsProduction() && config.Auth.DemoTokenSecret == "seswa-demo-secret" {
		return fmt.Errorf("demo token secret must be changed in production mode")
	}

	if _, err := time.ParseDuration(config.Auth.DemoTokenExpiration); err != nil {
		return fmt.Errorf("invalid demo token expiration format: %w", err)
	}

	intervals := map[string]string{
		"live_stats_interval": config.Realtime.LiveStatsInterval,
		"activity_interval":   config.Realtime.ActivityInterval,
		"mentorship_interval": config.Realtime.MentorshipInterval,
	}
	for name, value := range intervals {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid realtime %s format: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("realtime %s must be positive", name)
		}
	}

	if config.Realtime.SendBuffer < 1 {
		return fmt.Errorf("realtime send buffer must be at least 1")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
