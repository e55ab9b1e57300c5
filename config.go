package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. A .env file in the working
// directory is loaded first.
type Config struct {
	Port            string        `env:"PORT"             envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE"         envDefault:"release"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED"  envDefault:"true"`
	TypeDelay       time.Duration `env:"TYPE_DELAY"       envDefault:"30ms"`
	StreamTimeout   time.Duration `env:"STREAM_TIMEOUT"   envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TypeDelay < 0 {
		return Config{}, fmt.Errorf("TYPE_DELAY must not be negative, got %s", cfg.TypeDelay)
	}
	return cfg, nil
}

// Timing is the page timing with the configured typing speed.
func (c Config) Timing() Timing {
	t := DefaultTiming()
	t.TypeDelay = c.TypeDelay
	return t
}
