package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Config holds everything read from the environment. Values are read once at
// startup; nothing re-reads the environment after Load returns.
type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" default:"mongodb://localhost:27017"`
	DatabaseName string `envconfig:"DATABASE_NAME" default:"app_db"`
	Port         string `envconfig:"PORT" default:"8000"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`

	ReadTimeoutSecs  int `envconfig:"READ_TIMEOUT_SECS" default:"7"`
	WriteTimeoutSecs int `envconfig:"WRITE_TIMEOUT_SECS" default:"15"`
	IdleTimeoutSecs  int `envconfig:"IDLE_TIMEOUT_SECS" default:"120"`
}

// Load reads .env if present, then populates Config from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found; using system environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "processing environment config")
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	if c.Port == "" {
		return ":8000"
	}
	if c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}
