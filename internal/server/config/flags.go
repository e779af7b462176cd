package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-c string   path to a JSON config file (consumed by parseJson)
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("paystream", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity duration (in minutes)")

	// -c/-config is consumed earlier by parseJson; filterArgs keeps it
	// (and anything else, e.g. go test flags) out of this parse
	args := filterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
