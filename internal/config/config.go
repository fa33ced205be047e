package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/clauseguard-server/internal/domain"
)

// Manager loads and holds the application configuration using Viper.
type Manager struct {
	config *domain.Config
}

// NewManager creates a configuration manager and loads configuration from
// file, environment and defaults.
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	// Set configuration file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/clauseguard/")

	// Set environment variable prefix and enable automatic env binding
	viper.SetEnvPrefix("CLAUSEGUARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Read configuration file (optional - will use defaults and env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.rate_limit_rps", 20)
	viper.SetDefault("server.rate_limit_burst", 40)
	viper.SetDefault("server.max_upload_bytes", 10<<20)

	// Engine defaults. The saturation constant and the classification
	// threshold are calibrated against a labeled corpus.
	viper.SetDefault("engine.risk_saturation_k", 40.0)
	viper.SetDefault("engine.min_classify_score", 4)
	viper.SetDefault("engine.risk_evidence_limit", 20)
	viper.SetDefault("engine.min_text_length", 20)
	viper.SetDefault("engine.max_checklist_items", 7)
	viper.SetDefault("engine.max_evidence_per_finding", 2)

	// Cache defaults. Redis is optional; empty URL means local LRU only.
	viper.SetDefault("cache.max_entries", 100)
	viper.SetDefault("cache.ttl", "1h")
	viper.SetDefault("cache.redis_url", "")

	// Feedback store defaults
	viper.SetDefault("feedback.driver", "sqlite")
	viper.SetDefault("feedback.sqlite_path", "./data/feedback.db")
	viper.SetDefault("feedback.postgres_url", "")
	viper.SetDefault("feedback.migrations_path", "./migrations")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetEngineConfig returns engine configuration
func (m *Manager) GetEngineConfig() *domain.EngineConfig {
	return &m.config.Engine
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid max upload size: %d", config.Server.MaxUploadBytes)
	}

	if config.Engine.RiskSaturationK <= 0 {
		return fmt.Errorf("risk saturation constant must be positive, got %v", config.Engine.RiskSaturationK)
	}
	if config.Engine.MinClassifyScore < 0 {
		return fmt.Errorf("minimum classification score must not be negative, got %d", config.Engine.MinClassifyScore)
	}
	if config.Engine.MinTextLength <= 0 {
		return fmt.Errorf("minimum text length must be positive, got %d", config.Engine.MinTextLength)
	}
	if config.Engine.MaxChecklistItems <= 0 {
		return fmt.Errorf("checklist cap must be positive, got %d", config.Engine.MaxChecklistItems)
	}

	if config.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache max entries must be positive, got %d", config.Cache.MaxEntries)
	}

	switch config.Feedback.Driver {
	case "sqlite":
		if config.Feedback.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required for the sqlite feedback driver")
		}
	case "postgres":
		if config.Feedback.PostgresURL == "" {
			return fmt.Errorf("postgres URL is required for the postgres feedback driver")
		}
	default:
		return fmt.Errorf("invalid feedback driver: %s", config.Feedback.Driver)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}

// IsDevelopment returns true if running in development mode
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(viper.GetString("environment"))
	return env == "development" || env == "dev" || env == ""
}
