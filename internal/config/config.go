package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	API       APIConfig       `yaml:"api"`
	Log       LogConfig       `yaml:"log"`
	Notify    NotifyConfig    `yaml:"notify"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains the admin HTTP and gRPC health listener settings
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	GRPCPort int    `yaml:"grpc_port"`
}

// APIConfig points at the rental REST API, the system of record
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// NotifyConfig contains customer email settings. An empty API key disables sending.
type NotifyConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	AuditReservationQuotes string `yaml:"audit_reservation_quotes"`
	ProbeUpstream          string `yaml:"probe_upstream"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies environment overrides and defaults, and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// API
	if val := os.Getenv("API_BASE_URL"); val != "" {
		c.API.BaseURL = val
	}
	if val := os.Getenv("API_TIMEOUT_SECONDS"); val != "" {
		fmt.Sscanf(val, "%d", &c.API.TimeoutSeconds)
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("GRPC_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.GRPCPort)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Notify
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Notify.SendGridAPIKey = val
	}
	if val := os.Getenv("NOTIFY_FROM_EMAIL"); val != "" {
		c.Notify.FromEmail = val
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = 15
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = c.Server.Port + 1
	}
	if c.Notify.FromName == "" {
		c.Notify.FromName = "Locadora"
	}
	if c.Scheduler.AuditReservationQuotes == "" {
		c.Scheduler.AuditReservationQuotes = "0 0 3 * * *" // 3 AM UTC
	}
	if c.Scheduler.ProbeUpstream == "" {
		c.Scheduler.ProbeUpstream = "0 */1 * * * *" // every minute
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.GRPCPort <= 0 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.Server.GRPCPort)
	}
	if c.Server.GRPCPort == c.Server.Port {
		return fmt.Errorf("gRPC port must differ from the HTTP port")
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid API timeout: %d", c.API.TimeoutSeconds)
	}

	if c.Notify.SendGridAPIKey != "" && c.Notify.FromEmail == "" {
		return fmt.Errorf("notify from_email is required when a SendGrid API key is set")
	}

	return nil
}

// APITimeout returns the per-request timeout for the rental API
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// GetServerAddress returns the admin HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC health server address
func (c *Config) GetGRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}
