package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"
)

// StorageKey is the durable storage key (cookie name) holding the token.
const StorageKey = "cart_session_id"

// MinLength is the cheap lower bound used by data-path checks that only
// need to reject obviously bogus tokens without a full format match.
const MinLength = 10

const (
	tokenPrefix     = "cart_session_"
	tokenRandomSize = 16
)

// Canonical token shape: prefix, 13-digit millisecond timestamp, 32
// lowercase hex chars of entropy.
var tokenPattern = regexp.MustCompile(`^cart_session_\d{13}_[a-f0-9]{32}$`)

// GenerateToken produces a fresh cart session token with 128 bits of
// entropy. Possession of the exact string is the only credential for the
// cart it scopes, so tokens must never be logged raw or placed in URLs.
func GenerateToken() string {
	randomBytes := make([]byte, tokenRandomSize)
	_, _ = rand.Read(randomBytes)
	return fmt.Sprintf("%s%013d_%s", tokenPrefix, time.Now().UnixMilli(), hex.EncodeToString(randomBytes))
}

// ValidateFormat reports whether candidate is a well-formed cart session
// token. Anything else, including legacy or tampered values, is treated
// as no session at all.
func ValidateFormat(candidate string) bool {
	if candidate == "" {
		return false
	}
	return tokenPattern.MatchString(candidate)
}

// Hash returns the SHA-256 hex digest of a token, safe for log fields,
// cache keys, and rate-limit buckets.
func Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
