package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	ReportsDir string `mapstructure:"REPORTS_DIR"`
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	AdviceFile string `mapstructure:"ADVICE_FILE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("REPORTS_DIR", "patient_reports")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("ADVICE_FILE", "")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("REPORTS_DIR")
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("ADVICE_FILE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ReportsDir = strings.TrimSpace(cfg.ReportsDir)

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate rejects settings the CLI cannot run with: an empty reports
// directory or a log level zerolog does not recognise.
func (c *Config) Validate() error {
	if c.ReportsDir == "" {
		return fmt.Errorf("REPORTS_DIR must not be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level: %w", c.LogLevel, err)
	}
	return nil
}
