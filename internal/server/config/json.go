package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/airlineadmin/internal/flagx"
	"github.com/dmitrijs2005/airlineadmin/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields
// distinguish "absent" from the zero value, so a file only overrides the
// keys it contains.
type JsonConfig struct {
	EndpointAddrHTTP        *string         `json:"endpoint_addr_http"`
	DatabaseDriver          *string         `json:"database_driver"`
	DatabaseDSN             *string         `json:"database_dsn"`
	SecretKey               *string         `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	EnforceFlightReferences *bool           `json:"enforce_flight_references"`
	LogLevel                *string         `json:"log_level"`
	SecureCookies           *bool           `json:"secure_cookies"`
}

// parseJson loads the file named by -c/-config, if any, and copies the
// present keys into config. Unreadable files and invalid JSON panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDriver != nil {
		config.DatabaseDriver = *c.DatabaseDriver
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.EnforceFlightReferences != nil {
		config.EnforceFlightReferences = *c.EnforceFlightReferences
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.SecureCookies != nil {
		config.SecureCookies = *c.SecureCookies
	}
}
