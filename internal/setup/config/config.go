package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion is the config file version this build expects.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version    int          `koanf:"version"`
	Debug      Debug        `koanf:"debug"`
	PostgreSQL PostgreSQL   `koanf:"postgresql"`
	Redis      Redis        `koanf:"redis"`
	API        APIConfig    `koanf:"api"`
	Worker     WorkerConfig `koanf:"worker"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum number of log session directories to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	User         string `koanf:"user"`
	Password     string `koanf:"password"`
	DBName       string `koanf:"db_name"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	// Connection lifetime limits in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// APIConfig contains REST server specific configuration.
type APIConfig struct {
	Server    ServerConfig    `koanf:"server"`
	Auth      AuthConfig      `koanf:"auth"`
	Rewards   RewardsConfig   `koanf:"rewards"`
	Consensus ConsensusConfig `koanf:"consensus"`
}

// ServerConfig contains HTTP listener configuration.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// AuthConfig contains settings for verifying auth service tokens.
type AuthConfig struct {
	// Shared HMAC secret for tokens issued by the auth service.
	JWTSecret string `koanf:"jwt_secret"`
}

// RewardsConfig contains the rating increments awarded for contributions.
// The sentence/word asymmetry is a product decision, hence configurable.
type RewardsConfig struct {
	// Awarded for a net-new sentence suggestion.
	SentenceSuggested int64 `koanf:"sentence_suggested"`
	// Awarded for a net-new translation submission.
	TranslationSuggested int64 `koanf:"translation_suggested"`
	// Awarded for casting a vote.
	VoteCast int64 `koanf:"vote_cast"`
	// Awarded for a net-new word suggestion.
	WordSuggested int64 `koanf:"word_suggested"`
	// Awarded for contributing to an existing word suggestion.
	WordContributed int64 `koanf:"word_contributed"`
	// Awarded to the moderator and author when a word is accepted.
	WordAccepted int64 `koanf:"word_accepted"`
}

// ConsensusConfig contains vote tally and review assignment settings.
type ConsensusConfig struct {
	// Net score at which a translation is promoted to the confirmed store.
	PromotionThreshold int32 `koanf:"promotion_threshold"`
	// Review assignment lease duration in seconds.
	WatcherTTLSeconds int `koanf:"watcher_ttl_seconds"`
}

// WorkerConfig contains background worker configuration.
type WorkerConfig struct {
	// How many days of hourly snapshots to retain.
	StatsRetentionDays int `koanf:"stats_retention_days"`
}

// LoadConfig loads the config file from the first path that has one and
// checks its version against the build.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Config paths in order of precedence
	configPaths := []string{".", "config", "/etc/burlang", "$HOME/.burlang"}

	var loaded bool

	var usedDir string

	for _, path := range configPaths {
		if path[0] == '$' {
			path = os.ExpandEnv(path)
		}

		configFile := filepath.Join(path, "config.toml")
		if _, err := os.Stat(configFile); err != nil {
			continue
		}

		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, "", fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}

		loaded = true
		usedDir = path

		break
	}

	if !loaded {
		return nil, "", ErrConfigFileNotFound
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Version != CurrentVersion {
		return nil, "", fmt.Errorf("%w: expected %d, got %d",
			ErrConfigVersionMismatch, CurrentVersion, config.Version)
	}

	applyDefaults(&config)

	return &config, usedDir, nil
}

// applyDefaults fills in zero-valued settings that have sane defaults.
func applyDefaults(config *Config) {
	if config.Debug.LogLevel == "" {
		config.Debug.LogLevel = "info"
	}

	if config.Debug.MaxLogsToKeep == 0 {
		config.Debug.MaxLogsToKeep = 10
	}

	rewards := &config.API.Rewards
	if rewards.SentenceSuggested == 0 {
		rewards.SentenceSuggested = 100
	}

	if rewards.TranslationSuggested == 0 {
		rewards.TranslationSuggested = 100
	}

	if rewards.VoteCast == 0 {
		rewards.VoteCast = 100
	}

	if rewards.WordSuggested == 0 {
		rewards.WordSuggested = 30
	}

	if rewards.WordContributed == 0 {
		rewards.WordContributed = 10
	}

	if rewards.WordAccepted == 0 {
		rewards.WordAccepted = 30
	}

	consensus := &config.API.Consensus
	if consensus.PromotionThreshold == 0 {
		consensus.PromotionThreshold = 5
	}

	if consensus.WatcherTTLSeconds == 0 {
		consensus.WatcherTTLSeconds = 15
	}

	if config.Worker.StatsRetentionDays == 0 {
		config.Worker.StatsRetentionDays = 30
	}
}
