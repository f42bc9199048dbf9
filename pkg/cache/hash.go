package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Key builds a namespaced cache key from the hash of the given parts.
// Parts are hashed together in order with a separator, so "ab"+"c" and
// "a"+"bc" produce different keys.
func Key(namespace string, parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
		h.Write([]byte{0})
	}
	var b strings.Builder
	b.WriteString(namespace)
	b.WriteString(":")
	b.WriteString(hex.EncodeToString(h.Sum(nil)))
	return b.String()
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
