// Package cache provides a file-backed artifact cache.
//
// trayforge uses it to memoize external render results: converting a SCAD
// file to an STL mesh can take minutes, while the generator itself runs in
// microseconds. Entries are keyed by content hash, so regenerating an
// identical tray reuses the previously rendered mesh.
//
// The cache is a plain byte store. Callers own the key scheme; see
// [Key] for the hash helper.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
