// Package config handles configuration for the airline admin server:
// defaults, environment, an optional JSON file and command-line flags,
// applied in that order.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the web UI.
//   - DatabaseDriver: "sqlite" (modernc, pure Go) or "pgx" (PostgreSQL).
//   - DatabaseDSN: driver specific data source name.
//   - SecretKey: HMAC secret for signing session cookies (HS256).
//   - SessionValidityDuration: lifetime of a login session.
//   - EnforceFlightReferences: reject shipments pointing at unknown flights
//     and deletion of flights that still carry shipments.
//   - LogLevel: debug, info, warn or error.
//   - SecureCookies: mark cookies Secure (serve behind TLS).
type Config struct {
	EndpointAddrHTTP        string
	DatabaseDriver          string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	EnforceFlightReferences bool
	LogLevel                string
	SecureCookies           bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:airline.db?_pragma=busy_timeout(5000)"
	c.SecretKey = "a_very_secret_key_that_should_be_changed"
	c.SessionValidityDuration = 12 * time.Hour
	c.EnforceFlightReferences = true
	c.LogLevel = "info"
	c.SecureCookies = false
}

// LoadConfig builds a Config from defaults, then overlays the environment,
// an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// LoadEnvConfig builds a Config from defaults and the environment only.
// It serves tools that parse their own command line.
func LoadEnvConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	return cfg
}
