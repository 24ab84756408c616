package logger

import (
	"crypto/rand"
	"encoding/hex"
)

// nextID generates a short random identifier stamped on every line so logs
// from different process runs can be told apart.
func nextID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b[:])
}
