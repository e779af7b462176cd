// Package config handles configuration for the payroll server, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the payroll server.
//
// Fields:
//   - ListenAddr: bind address for the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required; startup fails without it.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: access token lifetime.
type Config struct {
	ListenAddr            string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: The secret key default is insecure and must be overridden in prod.
// The DSN has no default at all: the store location must be stated
// explicitly so a misconfigured deployment fails at startup, not on the
// first query.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "supersecretkey"
	c.TokenValidityDuration = 60 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	parseFlags(cfg)

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("database DSN is required (set -d or DATABASE_DSN)")
	}
	return cfg, nil
}
