package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionTokenLength is the number of random bytes in a session token.
// 32 bytes gives 256 bits of entropy, making tokens unguessable.
const sessionTokenLength = 32

// NewSessionToken produces an opaque high-entropy session token encoded with
// the unpadded URL-safe base64 alphabet, suitable for transport in a cookie.
//
// The token carries no embedded claims; it is only meaningful as a lookup
// key into the session store.
func NewSessionToken() (string, error) {
	raw := make([]byte, sessionTokenLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
