package trace

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionID generates a random 16-byte id as hex string (32 characters).
// Every span of one program run carries the same session id.
func NewSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
