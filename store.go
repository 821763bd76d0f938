package locmap

import "context"

// Store is a string-keyed blob store backing the sitemap cache.
// Implementations must be safe for concurrent use.
type Store interface {
	// Has reports whether key exists.
	Has(ctx context.Context, key string) (bool, error)

	// Get returns the value of key. The boolean is false if key does not exist.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Flush deletes all keys.
	Flush(ctx context.Context) error
}
