// Package models defines the records persisted by the airline admin server.
package models

import "time"

// User is an administrator account.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
