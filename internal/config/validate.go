package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Dictionary.MaxWordsPerUser <= 0 {
		return fmt.Errorf("dictionary.max_words_per_user must be > 0 (got %d)", c.Dictionary.MaxWordsPerUser)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
		if d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
		}
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", d.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", d.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

func (s *StudyConfig) validate() error {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	switch s.DefaultFace {
	case "term", "translation", "alt_translation", "image":
	default:
		return fmt.Errorf("default_face must be one of term, translation, alt_translation, image (got %q)", s.DefaultFace)
	}

	if s.MaxQueueSize < 0 {
		return fmt.Errorf("max_queue_size must be >= 0 (got %d)", s.MaxQueueSize)
	}
	return nil
}
