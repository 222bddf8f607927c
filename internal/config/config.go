package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName      string        `env:"APP_NAME" envDefault:"Notris"`
	Debug        bool          `env:"DEBUG" envDefault:"false"`
	LogFile      string        `env:"LOG_FILE" envDefault:"notris.log"`
	TuningScript string        `env:"TUNING_SCRIPT" envDefault:"games/tetris/tetris.lua"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	Seed         int64         `env:"SEED" envDefault:"0"`
	NoColor      bool          `env:"NO_COLOR" envDefault:"false"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading from environment")
	}

	return Parse()
}

// Parse reads the configuration from the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive, got %s", c.TickInterval)
	}
	if c.TuningScript == "" {
		return fmt.Errorf("TUNING_SCRIPT must not be empty")
	}
	return nil
}
