package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/jmanzanog/employee-roster/internal/domain"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	LogLevel     string
	LogFormat    string
	LogFile      string
	LogMaxSizeMB int
	LogMaxFiles  int
	BonusPercent domain.Decimal
}

func Load() (*Config, error) {
	maxSize, err := strconv.Atoi(getEnvOrDefault("LOG_MAX_SIZE_MB", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_SIZE_MB: %w", err)
	}

	maxFiles, err := strconv.Atoi(getEnvOrDefault("LOG_MAX_FILES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_FILES: %w", err)
	}

	bonusPercent, err := ParseBonusPercent(getEnvOrDefault("BONUS_PERCENT", strconv.Itoa(domain.DefaultBonusPercent)))
	if err != nil {
		return nil, fmt.Errorf("invalid BONUS_PERCENT: %w", err)
	}

	cfg := &Config{
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", LogFormatText),
		LogFile:      os.Getenv("LOG_FILE"),
		LogMaxSizeMB: maxSize,
		LogMaxFiles:  maxFiles,
		BonusPercent: bonusPercent,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that may have been overridden after Load.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported LOG_FORMAT: %s (supported: %s, %s)", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	if c.LogMaxSizeMB <= 0 {
		return fmt.Errorf("invalid LOG_MAX_SIZE_MB: must be positive, got %d", c.LogMaxSizeMB)
	}
	if c.LogMaxFiles <= 0 {
		return fmt.Errorf("invalid LOG_MAX_FILES: must be positive, got %d", c.LogMaxFiles)
	}

	if !c.BonusPercent.IsFinite() || c.BonusPercent.Cmp(domain.Zero) < 0 {
		return fmt.Errorf("invalid BONUS_PERCENT: must be a non-negative number, got %s", c.BonusPercent)
	}

	return nil
}

// SlogLevel parses LogLevel using slog's level names (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

// ParseBonusPercent reads a percentage as an exact decimal, so "12.5" is
// never rounded through a float.
func ParseBonusPercent(v string) (domain.Decimal, error) {
	return domain.NewDecimalFromString(v)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
