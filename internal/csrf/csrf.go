// Package csrf implements the double-submit CSRF token scheme used by the
// request authenticator.
//
// Each session stores a long-lived secret seed server-side. Tokens handed to
// the client are derived from that seed: a random salt plus an HMAC-SHA256
// binding of the salt under the seed. A token therefore proves knowledge of
// the seed without revealing it, is safe to embed in rendered pages and
// response bodies, and any number of valid tokens may exist for one seed.
// Knowing a valid token does not allow forging a token for a different seed.
package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// seedLength is the number of random bytes in a seed (256 bits).
	seedLength = 32

	// saltLength is the number of random bytes in a token's salt component.
	saltLength = 16

	// tokenSeparator joins the salt and MAC components of a token.
	tokenSeparator = "."
)

// encoding is the unpadded URL-safe base64 alphabet used for seeds and both
// token components, keeping tokens safe for headers, JSON, and form fields.
var encoding = base64.RawURLEncoding

// GenerateSeed produces a fresh cryptographically random secret seed.
// One seed is generated per session and never reused across sessions.
func GenerateSeed() (string, error) {
	seed := make([]byte, seedLength)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("error generating csrf seed: %w", err)
	}

	return encoding.EncodeToString(seed), nil
}

// DeriveToken produces a token of the form "salt.mac" where mac is the
// HMAC-SHA256 of the salt keyed with the seed. The random salt makes every
// derived token distinct; verification accepts any token validly derived
// from the current seed.
func DeriveToken(seed string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating csrf token salt: %w", err)
	}

	encodedSalt := encoding.EncodeToString(salt)

	return encodedSalt + tokenSeparator + sign(seed, encodedSalt), nil
}

// VerifyToken reports whether token was derived from seed.
//
// The MAC comparison uses hmac.Equal, which is constant-time, to avoid
// timing side-channels. Malformed, empty, or truncated tokens verify false;
// this function never returns an error because callers treat every failure
// identically to a wrong token.
func VerifyToken(seed string, token string) bool {
	if seed == "" || token == "" {
		return false
	}

	encodedSalt, encodedMAC, found := strings.Cut(token, tokenSeparator)
	if !found || encodedSalt == "" || encodedMAC == "" {
		return false
	}

	suppliedMAC, err := encoding.DecodeString(encodedMAC)
	if err != nil {
		return false
	}

	expectedMAC, err := encoding.DecodeString(sign(seed, encodedSalt))
	if err != nil {
		return false
	}

	return hmac.Equal(expectedMAC, suppliedMAC)
}

// sign computes the base64url-encoded HMAC-SHA256 of data keyed with seed.
func sign(seed string, data string) string {
	mac := hmac.New(sha256.New, []byte(seed))
	mac.Write([]byte(data))
	return encoding.EncodeToString(mac.Sum(nil))
}
