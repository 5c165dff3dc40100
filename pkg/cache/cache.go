// Package cache stores assembled layouts and rendered artifacts.
//
// Layout assembly is cheap, but rendering (especially PNG through Graphviz)
// is not, and the HTTP server sees the same charts repeatedly. Entries are
// addressed by keys from a [Keyer]; the chart fingerprint makes identical
// inputs share entries across processes.
//
// Backends:
//   - [FileCache]: local directory, used by the CLI
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// Default time-to-live values for cached entries.
const (
	LayoutTTL   = 30 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the data and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; a ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
