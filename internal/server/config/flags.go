package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/airlineadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":8000")
//	-b string   database driver: sqlite or pgx
//	-d string   database DSN
//	-s string   session signing key
//	-t int      session validity, minutes
//	-r bool     enforce shipment to flight references
//	-l string   log level
//	-x bool     secure cookies
//
// os.Args is filtered first so flags of other parsers (-c) do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-b", "-d", "-s", "-t", "-r", "-l", "-x"},
		"-r", "-x")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "b", config.DatabaseDriver, "database driver (sqlite|pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")

	fs.BoolVar(&config.EnforceFlightReferences, "r", config.EnforceFlightReferences, "enforce shipment flight references")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug|info|warn|error)")
	fs.BoolVar(&config.SecureCookies, "x", config.SecureCookies, "set Secure on cookies")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
}
