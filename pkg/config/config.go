package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production, test

	// Redis (feed cache + distributed rate limit)
	Redis RedisConfig

	// Synopsis capability
	Summary SummaryConfig

	// Signal composition
	Signal SignalConfig

	// Feed fetcher
	Feed FeedConfig

	// Scheduled scan
	Scan ScanConfig

	// Optional YAML taxonomy override
	TaxonomyPath string

	// Logging
	LogLevel  string
	LogFormat string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// SummaryConfig controls the abstractive synopsis capability
type SummaryConfig struct {
	Disabled        bool   // DISABLE_SUMMARIZATION
	Provider        string // anthropic, cohere
	Model           string
	Timeout         time.Duration
	AnthropicAPIKey string
	CohereAPIKey    string
}

// SignalConfig holds composite score weights and thresholds
type SignalConfig struct {
	DeadZone        float64
	CategoryWeight  float64
	TickerBonus     float64
	SentimentWeight float64
	SentimentCap    float64
	MaxScore        float64
	SynopsisChars   int
	Workers         int
}

// FeedConfig holds RSS fetcher configuration
type FeedConfig struct {
	Limit      int
	Timeout    time.Duration
	RatePerSec float64
	CacheTTL   time.Duration
}

// ScanConfig holds scheduled scan configuration
type ScanConfig struct {
	Schedule string // cron expression with seconds field
	Period   string
	Industry string
}

// Supported summary providers
const (
	ProviderAnthropic = "anthropic"
	ProviderCohere    = "cohere"
)

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		Summary: SummaryConfig{
			Disabled:        getEnvAsBool("DISABLE_SUMMARIZATION", false),
			Provider:        strings.ToLower(getEnv("SUMMARY_PROVIDER", ProviderAnthropic)),
			Model:           getEnv("SUMMARY_MODEL", ""),
			Timeout:         getEnvAsDuration("SUMMARY_TIMEOUT", "10s"),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			CohereAPIKey:    getEnv("COHERE_API_KEY", ""),
		},

		Signal: SignalConfig{
			DeadZone:        getEnvAsFloat("SIGNAL_DEAD_ZONE", 0.3),
			CategoryWeight:  getEnvAsFloat("SCORE_CATEGORY_WEIGHT", 3),
			TickerBonus:     getEnvAsFloat("SCORE_TICKER_BONUS", 1),
			SentimentWeight: getEnvAsFloat("SCORE_SENTIMENT_WEIGHT", 2),
			SentimentCap:    getEnvAsFloat("SCORE_SENTIMENT_CAP", 2),
			MaxScore:        getEnvAsFloat("SCORE_MAX", 10),
			SynopsisChars:   getEnvAsInt("SYNOPSIS_MAX_CHARS", 200),
			Workers:         getEnvAsInt("RANK_WORKERS", 4),
		},

		Feed: FeedConfig{
			Limit:      getEnvAsInt("FEED_LIMIT", 30),
			Timeout:    getEnvAsDuration("FEED_TIMEOUT", "15s"),
			RatePerSec: getEnvAsFloat("FEED_RATE_PER_SEC", 2),
			CacheTTL:   getEnvAsDuration("FEED_CACHE_TTL", "5m"),
		},

		Scan: ScanConfig{
			Schedule: getEnv("SCAN_SCHEDULE", "0 */15 * * * *"),
			Period:   getEnv("SCAN_PERIOD", "day"),
			Industry: getEnv("SCAN_INDUSTRY", "all"),
		},

		TaxonomyPath: getEnv("TAXONOMY_PATH", ""),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns a config populated with built-in defaults, without reading the environment
func Default() *Config {
	return &Config{
		Port: "8089",
		Env:  "development",
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
		},
		Summary: SummaryConfig{
			Provider: ProviderAnthropic,
			Timeout:  10 * time.Second,
		},
		Signal: SignalConfig{
			DeadZone:        0.3,
			CategoryWeight:  3,
			TickerBonus:     1,
			SentimentWeight: 2,
			SentimentCap:    2,
			MaxScore:        10,
			SynopsisChars:   200,
			Workers:         4,
		},
		Feed: FeedConfig{
			Limit:      30,
			Timeout:    15 * time.Second,
			RatePerSec: 2,
			CacheTTL:   5 * time.Minute,
		},
		Scan: ScanConfig{
			Schedule: "0 */15 * * * *",
			Period:   "day",
			Industry: "all",
		},
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	switch c.Env {
	case "development", "staging", "production", "test":
	default:
		return fmt.Errorf("ENV must be one of: development, staging, production, test")
	}

	if c.Summary.Provider != ProviderAnthropic && c.Summary.Provider != ProviderCohere {
		return fmt.Errorf("SUMMARY_PROVIDER must be one of: %s, %s", ProviderAnthropic, ProviderCohere)
	}

	s := c.Signal
	if s.DeadZone < 0 || s.DeadZone >= 1 {
		return fmt.Errorf("SIGNAL_DEAD_ZONE must be in [0, 1), got %v", s.DeadZone)
	}
	if s.CategoryWeight < 0 || s.TickerBonus < 0 || s.SentimentWeight < 0 || s.SentimentCap < 0 {
		return fmt.Errorf("score weights must not be negative")
	}
	if s.MaxScore <= 0 {
		return fmt.Errorf("SCORE_MAX must be positive")
	}
	if s.SynopsisChars <= 0 {
		return fmt.Errorf("SYNOPSIS_MAX_CHARS must be positive")
	}
	if s.Workers <= 0 {
		return fmt.Errorf("RANK_WORKERS must be positive")
	}
	if c.Feed.Limit <= 0 {
		return fmt.Errorf("FEED_LIMIT must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
