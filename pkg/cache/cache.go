// Package cache provides pluggable byte caches for rendered artifacts.
//
// Parsing a Newick string is cheap; rasterizing a large tree through
// Graphviz is not. The pipeline therefore caches rendered artifacts keyed by
// a hash of the input text and the render options. Three backends are
// provided:
//
//   - [FileCache]: entries as files under a directory, for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: no-op backend for tests and --no-cache
//
// Keys are built with [Key], which hashes its parts so arbitrary input text
// never leaks into file names or redis keys.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with per-entry TTLs.
// A TTL of 0 means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per artifact class. Parsed trees are content-addressed (the
// key includes a hash of the input), so invalidation is never a correctness
// concern - the TTLs only bound disk usage.
const (
	// TTLTree is the lifetime of cached parsed trees.
	TTLTree = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 24 * time.Hour
)
