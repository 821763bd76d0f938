package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locmap"
)

// Ensure LoggingProvider implements locmap.Provider.
var _ locmap.Provider = (*LoggingProvider)(nil)

// LoggingProvider wraps a Provider with debug logging.
type LoggingProvider struct {
	next   locmap.Provider
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider(next locmap.Provider, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger}
}

// WrapProviders wraps each provider with a LoggingProvider.
func WrapProviders(providers []locmap.Provider, logger *slog.Logger) []locmap.Provider {
	wrapped := make([]locmap.Provider, len(providers))
	for i, p := range providers {
		wrapped[i] = NewLoggingProvider(p, logger)
	}
	return wrapped
}

func (p *LoggingProvider) Name() string  { return p.next.Name() }
func (p *LoggingProvider) Priority() int { return p.next.Priority() }

// Sitemaps delegates to the wrapped provider and logs the result.
func (p *LoggingProvider) Sitemaps(ctx context.Context, site *locmap.Site, lang *locmap.Language) (sitemaps []*locmap.Sitemap) {
	defer func(begin time.Time) {
		p.logger.Debug("provider lookup",
			"provider", p.next.Name(),
			"site", site.Identifier,
			"language", languageID(site, lang),
			"count", len(sitemaps),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Sitemaps(ctx, site, lang)
}
