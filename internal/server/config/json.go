package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
// Durations are given as integers in minutes. After unmarshalling, its
// fields are copied into the runtime Config.
type JsonConfig struct {
	ListenAddr           string `json:"listen_addr"`
	DatabaseDSN          string `json:"database_dsn"`
	SecretKey            string `json:"secret_key"`
	TokenValidityMinutes int    `json:"token_validity_minutes"`
}

// jsonConfigPath extracts the config file path from the -c or -config
// command-line flags. Only those flags are parsed here; everything else is
// left for parseFlags.
func jsonConfigPath() string {
	var config string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}

// parseJson loads configuration values from an optional JSON file into the
// provided Config. If no -c/-config flag is given, nothing is loaded. Only
// fields present in the file override the current values.
func parseJson(config *Config) error {
	jsonConfigFile := jsonConfigPath()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("config file read error: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config file parse error: %w", err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityMinutes > 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityMinutes) * time.Minute
	}

	return nil
}
