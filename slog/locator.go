// Package slog provides logging decorators for locmap services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locmap"
)

// Ensure LoggingLocator implements locmap.SitemapLocator.
var _ locmap.SitemapLocator = (*LoggingLocator)(nil)

// LoggingLocator wraps a SitemapLocator with logging.
type LoggingLocator struct {
	next   locmap.SitemapLocator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next locmap.SitemapLocator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// LocateBySite delegates to the wrapped locator and logs the lookup.
func (l *LoggingLocator) LocateBySite(ctx context.Context, site *locmap.Site, lang *locmap.Language) (sitemaps []*locmap.Sitemap, err error) {
	defer func(begin time.Time) {
		l.logger.Info("locate sitemaps",
			"site", site.Identifier,
			"language", languageID(site, lang),
			"count", len(sitemaps),
			"cached", isCached(sitemaps),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LocateBySite(ctx, site, lang)
}

// LocateAllBySite delegates to the wrapped locator and logs the lookup.
func (l *LoggingLocator) LocateAllBySite(ctx context.Context, site *locmap.Site, accessible func(*locmap.Language) bool) (result map[int][]*locmap.Sitemap, err error) {
	defer func(begin time.Time) {
		l.logger.Info("locate sitemaps of all languages",
			"site", site.Identifier,
			"languages", len(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LocateAllBySite(ctx, site, accessible)
}

// IsValidSitemap delegates to the wrapped locator and logs the verdict.
func (l *LoggingLocator) IsValidSitemap(ctx context.Context, sitemap *locmap.Sitemap) (valid bool) {
	defer func(begin time.Time) {
		l.logger.Debug("validate sitemap",
			"url", sitemap.URL,
			"valid", valid,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return l.next.IsValidSitemap(ctx, sitemap)
}

func languageID(site *locmap.Site, lang *locmap.Language) int {
	if lang == nil {
		return site.DefaultLanguage().ID
	}
	return lang.ID
}

func isCached(sitemaps []*locmap.Sitemap) bool {
	return len(sitemaps) > 0 && sitemaps[0].Cached
}
