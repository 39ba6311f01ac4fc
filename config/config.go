package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host        string
		Port        int
		LogQueries  bool
		SlowQuery   time.Duration
		AutoMigrate bool
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
		// SecureCookie marks the session cookie Secure, enable behind TLS.
		SecureCookie bool
	}
	Cache struct {
		MaxEntries int
		TTL        time.Duration
	}
	Views struct {
		QueueSize int
	}
	Sentry struct {
		DSN         string
		Environment string
	}
}

const (
	envDatabaseURL = "DATABASE_URL"
	envJWTSecret   = "DESA_JWT_SECRET"
	envSentryDSN   = "SENTRY_DSN"
)

// Load decodes the TOML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if databaseURL := getenv(envDatabaseURL); databaseURL != "" {
		opt, err := pg.ParseURL(databaseURL)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", envDatabaseURL, err)
		}

		opt.PoolSize = c.Database.PoolSize
		opt.MaxRetries = c.Database.MaxRetries
		opt.MaxConnAge = c.Database.MaxConnAge
		c.Database = *opt
	}

	if secret := getenv(envJWTSecret); secret != "" {
		c.Auth.JWTSecret = secret
	}
	if dsn := getenv(envSentryDSN); dsn != "" {
		c.Sentry.DSN = dsn
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.App.SlowQuery == 0 {
		c.App.SlowQuery = 200 * time.Millisecond
	}
	if c.Database.MaxRetries == 0 {
		c.Database.MaxRetries = 3
	}
}
