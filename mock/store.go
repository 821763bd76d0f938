package mock

import (
	"context"

	"github.com/fwojciec/locmap"
)

var _ locmap.Store = (*Store)(nil)

// Store is a mock implementation of locmap.Store.
type Store struct {
	HasFn    func(ctx context.Context, key string) (bool, error)
	GetFn    func(ctx context.Context, key string) ([]byte, bool, error)
	SetFn    func(ctx context.Context, key string, value []byte) error
	RemoveFn func(ctx context.Context, key string) error
	FlushFn  func(ctx context.Context) error
}

func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	return s.HasFn(ctx, key)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.GetFn(ctx, key)
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetFn(ctx, key, value)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.RemoveFn(ctx, key)
}

func (s *Store) Flush(ctx context.Context) error {
	return s.FlushFn(ctx)
}
