package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Flags still
// win over the environment; the environment wins over the JSON file.
//
//	LISTEN_ADDR             HTTP bind address
//	DATABASE_DSN            PostgreSQL DSN
//	SECRET_KEY              JWT HMAC secret
//	TOKEN_VALIDITY_MINUTES  access token lifetime, minutes
func parseEnv(config *Config) {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		config.ListenAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
