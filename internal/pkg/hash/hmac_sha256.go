package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HMACSHA256 implements Hash with a keyed SHA-256 MAC. Unlike bcrypt it is
// deterministic, which makes it suitable for values that must be looked up by
// their hash, such as session tokens.
type HMACSHA256 struct {
	key []byte
}

// NewHMACSHA256 creates an HMACSHA256 hasher with the given secret key.
func NewHMACSHA256(key string) *HMACSHA256 {
	return &HMACSHA256{key: []byte(key)}
}

// Hash returns the hex-encoded HMAC-SHA256 of the plain value.
func (h *HMACSHA256) Hash(plain string) (string, error) {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(plain))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify reports whether plain hashes to the stored value, compared in
// constant time.
func (h *HMACSHA256) Verify(hashed, plain string) bool {
	computed, err := h.Hash(plain)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashed)) == 1
}
