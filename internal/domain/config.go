package domain

import "time"

// Config is the complete application configuration, loaded via Viper from
// a yaml file and CLAUSEGUARD_* environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Feedback FeedbackConfig `mapstructure:"feedback"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RateLimitRPS   int           `mapstructure:"rate_limit_rps"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
}

// EngineConfig holds the analysis engine's tunable constants. The
// saturation constant and the classification threshold have no objectively
// correct value; they are calibrated against a labeled corpus and carried
// as configuration, not architectural facts.
type EngineConfig struct {
	// RiskSaturationK controls the diminishing-returns curve that maps the
	// raw weighted match sum onto the 0-100 risk score.
	RiskSaturationK float64 `mapstructure:"risk_saturation_k"`
	// MinClassifyScore is the minimum weighted classification score below
	// which a document falls back to the general category.
	MinClassifyScore int `mapstructure:"min_classify_score"`
	// RiskEvidenceLimit caps the evidence list length in a risk assessment.
	RiskEvidenceLimit int `mapstructure:"risk_evidence_limit"`
	// MinTextLength is the minimal trimmed input length; shorter inputs
	// produce the degenerate fallback result.
	MinTextLength int `mapstructure:"min_text_length"`
	// MaxChecklistItems caps the pre-signing checklist length.
	MaxChecklistItems int `mapstructure:"max_checklist_items"`
	// MaxEvidencePerFinding caps evidence sentences per key point.
	MaxEvidencePerFinding int `mapstructure:"max_evidence_per_finding"`
}

// CacheConfig holds result cache settings. RedisURL is optional; when empty
// only the in-memory LRU tier is used.
type CacheConfig struct {
	MaxEntries int           `mapstructure:"max_entries"`
	TTL        time.Duration `mapstructure:"ttl"`
	RedisURL   string        `mapstructure:"redis_url"`
}

// FeedbackConfig holds classification feedback store settings. Driver is
// "sqlite" (default, zero-dependency) or "postgres" (shared deployments).
type FeedbackConfig struct {
	Driver         string `mapstructure:"driver"`
	SQLitePath     string `mapstructure:"sqlite_path"`
	PostgresURL    string `mapstructure:"postgres_url"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// LoggingConfig holds logrus settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
