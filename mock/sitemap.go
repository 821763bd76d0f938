package mock

import (
	"context"

	"github.com/fwojciec/locmap"
)

var _ locmap.SitemapLocator = (*SitemapLocator)(nil)

// SitemapLocator is a mock implementation of locmap.SitemapLocator.
type SitemapLocator struct {
	LocateBySiteFn    func(ctx context.Context, site *locmap.Site, lang *locmap.Language) ([]*locmap.Sitemap, error)
	LocateAllBySiteFn func(ctx context.Context, site *locmap.Site, accessible func(*locmap.Language) bool) (map[int][]*locmap.Sitemap, error)
	IsValidSitemapFn  func(ctx context.Context, sitemap *locmap.Sitemap) bool
}

func (l *SitemapLocator) LocateBySite(ctx context.Context, site *locmap.Site, lang *locmap.Language) ([]*locmap.Sitemap, error) {
	return l.LocateBySiteFn(ctx, site, lang)
}

func (l *SitemapLocator) LocateAllBySite(ctx context.Context, site *locmap.Site, accessible func(*locmap.Language) bool) (map[int][]*locmap.Sitemap, error) {
	return l.LocateAllBySiteFn(ctx, site, accessible)
}

func (l *SitemapLocator) IsValidSitemap(ctx context.Context, sitemap *locmap.Sitemap) bool {
	return l.IsValidSitemapFn(ctx, sitemap)
}

var _ locmap.SitemapCache = (*SitemapCache)(nil)

// SitemapCache is a mock implementation of locmap.SitemapCache.
type SitemapCache struct {
	GetFn    func(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap
	SetFn    func(ctx context.Context, sitemaps []*locmap.Sitemap) error
	RemoveFn func(ctx context.Context, site *locmap.Site, lang *locmap.Language) error
}

func (c *SitemapCache) Get(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	return c.GetFn(ctx, site, lang)
}

func (c *SitemapCache) Set(ctx context.Context, sitemaps []*locmap.Sitemap) error {
	return c.SetFn(ctx, sitemaps)
}

func (c *SitemapCache) Remove(ctx context.Context, site *locmap.Site, lang *locmap.Language) error {
	return c.RemoveFn(ctx, site, lang)
}
