package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fwojciec/locmap"
)

// Ensure Store implements locmap.Store at compile time.
var _ locmap.Store = (*Store)(nil)

// Store keeps cache entries in the cache_entries table.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store. The schema must be migrated.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Has reports whether an entry exists for key.
func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM cache_entries WHERE identifier = $1)`,
		key,
	).Scan(&exists)
	return exists, err
}

// Get returns the payload stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM cache_entries WHERE identifier = $1`,
		key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

// Set inserts or replaces the payload stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (identifier, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (identifier) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		key, value,
	)
	return err
}

// Remove deletes the entry stored under key.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE identifier = $1`, key)
	return err
}

// Flush deletes all entries.
func (s *Store) Flush(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries`)
	return err
}
