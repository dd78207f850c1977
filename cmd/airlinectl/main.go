// Command airlinectl performs administrative tasks against the airline
// admin database: applying the schema and creating user accounts.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
