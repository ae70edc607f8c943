package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/agilept/outcomes/pkg/pagination"
)

type Config struct {
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	ConsoleUsername   string `mapstructure:"CONSOLE_USERNAME"`
	ConsolePassword   string `mapstructure:"CONSOLE_PASSWORD"`
	PageSize          int    `mapstructure:"PAGE_SIZE"`
	SeedPatients      int    `mapstructure:"SEED_PATIENTS"`
	SeedEncountersPer int    `mapstructure:"SEED_ENCOUNTERS_PER_PATIENT"`
	SeedSnapshotsPer  int    `mapstructure:"SEED_SNAPSHOTS_PER_ENCOUNTER"`
	SeedRandom        int64  `mapstructure:"SEED_RANDOM"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CONSOLE_USERNAME", "agilept/aides.pa")
	v.SetDefault("CONSOLE_PASSWORD", "aides.PA")
	v.SetDefault("PAGE_SIZE", pagination.DefaultSize)
	v.SetDefault("SEED_PATIENTS", 0)
	v.SetDefault("SEED_ENCOUNTERS_PER_PATIENT", 2)
	v.SetDefault("SEED_SNAPSHOTS_PER_ENCOUNTER", 1)
	v.SetDefault("SEED_RANDOM", 1)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("CONSOLE_USERNAME")
	v.BindEnv("CONSOLE_PASSWORD")
	v.BindEnv("PAGE_SIZE")
	v.BindEnv("SEED_PATIENTS")
	v.BindEnv("SEED_ENCOUNTERS_PER_PATIENT")
	v.BindEnv("SEED_SNAPSHOTS_PER_ENCOUNTER")
	v.BindEnv("SEED_RANDOM")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is usable. The console refuses to
// start with an empty credential pair or a page size it cannot offer.
func (c *Config) Validate() error {
	if c.ConsoleUsername == "" || c.ConsolePassword == "" {
		return fmt.Errorf("CONSOLE_USERNAME and CONSOLE_PASSWORD must both be set")
	}
	if !pagination.SizeAllowed(c.PageSize) {
		return fmt.Errorf("PAGE_SIZE must be one of %v, got %d", pagination.AllowedSizes, c.PageSize)
	}
	if c.SeedPatients < 0 {
		return fmt.Errorf("SEED_PATIENTS must not be negative, got %d", c.SeedPatients)
	}
	return nil
}
