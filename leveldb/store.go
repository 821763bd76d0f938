// Package leveldb provides a LevelDB-based implementation of locmap.Store.
package leveldb

import (
	"context"
	"errors"

	"github.com/fwojciec/locmap"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Ensure Store implements locmap.Store at compile time.
var _ locmap.Store = (*Store)(nil)

// keyPrefix namespaces cache entries so the database can be shared.
const keyPrefix = "sitemaps:"

// Store keeps cache entries in a LevelDB database.
type Store struct {
	db *leveldb.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenMemory opens a database that lives in memory only.
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	return s.db.Has([]byte(keyPrefix+key), nil)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.db.Get([]byte(keyPrefix+key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.db.Put([]byte(keyPrefix+key), value, nil)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.db.Delete([]byte(keyPrefix+key), nil)
}

// Flush deletes every cache entry in one batch.
func (s *Store) Flush(ctx context.Context) error {
	it := s.db.NewIterator(util.BytesPrefix([]byte(keyPrefix)), nil)
	defer it.Release()

	batch := new(leveldb.Batch)
	for it.Next() {
		batch.Delete(append([]byte(nil), it.Key()...))
	}
	if err := it.Error(); err != nil {
		return err
	}
	return s.db.Write(batch, nil)
}
