package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locmap"
)

// Ensure LoggingStore implements locmap.Store.
var _ locmap.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with debug logging. Failures are logged at
// warn level.
type LoggingStore struct {
	next   locmap.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next locmap.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

func (s *LoggingStore) Has(ctx context.Context, key string) (ok bool, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "cache has", key, begin, err, "found", ok)
	}(time.Now())
	return s.next.Has(ctx, key)
}

func (s *LoggingStore) Get(ctx context.Context, key string) (value []byte, ok bool, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "cache get", key, begin, err, "found", ok, "size", len(value))
	}(time.Now())
	return s.next.Get(ctx, key)
}

func (s *LoggingStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, "cache set", key, begin, err, "size", len(value))
	}(time.Now())
	return s.next.Set(ctx, key, value)
}

func (s *LoggingStore) Remove(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, "cache remove", key, begin, err)
	}(time.Now())
	return s.next.Remove(ctx, key)
}

func (s *LoggingStore) Flush(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, "cache flush", "", begin, err)
	}(time.Now())
	return s.next.Flush(ctx)
}

func (s *LoggingStore) log(ctx context.Context, msg, key string, begin time.Time, err error, attrs ...any) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	args := []any{"duration", time.Since(begin)}
	if key != "" {
		args = append(args, "key", key)
	}
	args = append(args, attrs...)
	if err != nil {
		args = append(args, "err", err)
	}
	s.logger.Log(ctx, level, msg, args...)
}
