package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airline.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		withArgs(t, "-config", writeConfigFile(t, `{
			"endpoint_addr_http": "0.0.0.0:80",
			"database_driver": "pgx",
			"database_dsn": "postgres://localhost/airline",
			"secret_key": "json-secret",
			"session_validity_duration": "2h",
			"enforce_flight_references": false,
			"log_level": "debug",
			"secure_cookies": true
		}`))

		cfg := defaults()
		parseJson(cfg)

		assert.Equal(t, &Config{
			EndpointAddrHTTP:        "0.0.0.0:80",
			DatabaseDriver:          "pgx",
			DatabaseDSN:             "postgres://localhost/airline",
			SecretKey:               "json-secret",
			SessionValidityDuration: 2 * time.Hour,
			EnforceFlightReferences: false,
			LogLevel:                "debug",
			SecureCookies:           true,
		}, cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		withArgs(t, "-c", writeConfigFile(t, `{"database_dsn": "file:other.db"}`))

		cfg := defaults()
		parseJson(cfg)

		want := defaults()
		want.DatabaseDSN = "file:other.db"
		assert.Equal(t, want, cfg)
	})

	t.Run("no config flag", func(t *testing.T) {
		withArgs(t, "-a", ":1")

		cfg := defaults()
		parseJson(cfg)
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		withArgs(t, "-c", writeConfigFile(t, `{ not json`))
		require.Panics(t, func() { parseJson(defaults()) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		withArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))
		require.Panics(t, func() { parseJson(defaults()) })
	})
}
