package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Analysis     AnalysisConfig   `mapstructure:"analysis"`
	Reports      ReportsConfig    `mapstructure:"reports"`
	Processing   ProcessingConfig `mapstructure:"processing"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	Verbose               bool          `mapstructure:"verbose"`
}

// ScoreWeights contains the category weights used for the overall score.
// The four weights must sum to 1.0.
type ScoreWeights struct {
	PowerDynamics       float64 `mapstructure:"power_dynamics"`
	LinguisticAuthority float64 `mapstructure:"linguistic_authority"`
	VocalCommand        float64 `mapstructure:"vocal_command"`
	PersuasionInfluence float64 `mapstructure:"persuasion_influence"`
}

// AnalysisConfig contains scoring engine tuning
type AnalysisConfig struct {
	Weights      ScoreWeights `mapstructure:"weights"`
	IdealWPMMin  float64      `mapstructure:"ideal_wpm_min"`
	IdealWPMMax  float64      `mapstructure:"ideal_wpm_max"`
	LexiconPath  string       `mapstructure:"lexicon_path"`
	WatchLexicon bool         `mapstructure:"watch_lexicon"`
}

// ReportsConfig contains daily report settings
type ReportsConfig struct {
	Timezone           string `mapstructure:"timezone"`
	MaxCriticalMoments int    `mapstructure:"max_critical_moments"`
	MaxSuggestions     int    `mapstructure:"max_suggestions"`
}

// ProcessingConfig contains background job settings
type ProcessingConfig struct {
	Workers          int           `mapstructure:"workers"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	JobTimeout       time.Duration `mapstructure:"job_timeout"`
	RetryAttempts    int           `mapstructure:"retry_attempts"`
	JobRetentionDays int           `mapstructure:"job_retention_days"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled   bool           `mapstructure:"enabled"`
	Endpoints map[string]int `mapstructure:"endpoints"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
}

