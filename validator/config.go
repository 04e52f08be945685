package validator

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is a configuration for the validation application
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:"localhost:10000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:        "localhost:10000",
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadConfig reads configuration from the environment after a
// best-effort load of a local .env file.
func LoadConfig() (*Config, error) {
	// the .env file is optional
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config from env: %w", err)
	}

	return cfg, nil
}
