package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// envFile is read before the process environment; variables already set
// in the environment win over the file.
var envFile = ".env"

// parseEnv overlays AIRLINE_* environment variables. Malformed numeric or
// boolean values panic, like malformed flags and JSON do.
func parseEnv(config *Config) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	setString(&config.EndpointAddrHTTP, "AIRLINE_ADDR")
	setString(&config.DatabaseDriver, "AIRLINE_DB_DRIVER")
	setString(&config.DatabaseDSN, "AIRLINE_DB_DSN")
	setString(&config.SecretKey, "AIRLINE_SECRET_KEY")
	setString(&config.LogLevel, "AIRLINE_LOG_LEVEL")

	if v, ok := os.LookupEnv("AIRLINE_SESSION_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("AIRLINE_SESSION_TTL: %w", err))
		}
		config.SessionValidityDuration = d
	}

	setBool(&config.EnforceFlightReferences, "AIRLINE_ENFORCE_FLIGHT_REFS")
	setBool(&config.SecureCookies, "AIRLINE_SECURE_COOKIES")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = b
}
