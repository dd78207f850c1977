// Package shared holds small helpers used by the command-line tools.
package shared

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns n random bytes hex encoded, so the result has 2n
// characters.
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Wipe zeroes b in place. Use it on passwords once they are hashed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
