// Package provider implements the sitemap providers that only need the site
// configuration. Providers that fetch remote documents live in the packages
// named after their dependency.
package provider

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/fwojciec/locmap"
)

// Provider names used in configuration.
const (
	PageTypeName = "page_type"
	SiteName     = "site"
	DefaultName  = "default"
)

// Provider priorities. Higher priorities are asked first.
const (
	PageTypePriority = 300
	SitePriority     = 200
	DefaultPriority  = 0
)

// SitemapPageType is the page type serving the XML sitemap of a site.
const SitemapPageType = 1533906435

// PageTypeEnhancer is the route enhancer type that maps page types to paths.
const PageTypeEnhancer = "PageType"

// DefaultPath is the sitemap path assumed when nothing else is configured.
const DefaultPath = "sitemap.xml"

// Ensure providers implement locmap.Provider at compile time.
var (
	_ locmap.Provider = (*PageTypeProvider)(nil)
	_ locmap.Provider = (*SiteProvider)(nil)
	_ locmap.Provider = (*DefaultProvider)(nil)
)

// PageTypeProvider locates the sitemap served by the sitemap page type if the
// site routes that page type through a PageType route enhancer.
type PageTypeProvider struct{}

// NewPageTypeProvider creates a new PageTypeProvider.
func NewPageTypeProvider() *PageTypeProvider {
	return &PageTypeProvider{}
}

func (p *PageTypeProvider) Name() string  { return PageTypeName }
func (p *PageTypeProvider) Priority() int { return PageTypePriority }

func (p *PageTypeProvider) Sitemaps(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	path, ok := pageTypePath(site.Configuration)
	if !ok {
		return nil
	}

	var (
		u   string
		err error
	)
	if site.Router != nil {
		u, err = site.Router.PageTypeURL(site, lang, SitemapPageType)
	} else {
		u, err = locmap.SiteURLWithPath(site, lang, path)
	}
	if err != nil || u == "" {
		return nil
	}
	return []*locmap.Sitemap{locmap.NewSitemap(u, site, lang)}
}

// pageTypePath returns the path mapped to the sitemap page type by the first
// PageType route enhancer of the site configuration.
func pageTypePath(config map[string]any) (string, bool) {
	enhancers, _ := config["routeEnhancers"].(map[string]any)

	// Map iteration is unordered; pick enhancers in key order.
	for _, name := range slices.Sorted(maps.Keys(enhancers)) {
		enhancer, _ := enhancers[name].(map[string]any)
		if enhancer == nil || enhancer["type"] != PageTypeEnhancer {
			continue
		}
		pageTypeMap, _ := enhancer["map"].(map[string]any)
		for _, path := range slices.Sorted(maps.Keys(pageTypeMap)) {
			if isSitemapPageType(pageTypeMap[path]) {
				return path, true
			}
		}
		return "", false
	}
	return "", false
}

func isSitemapPageType(v any) bool {
	switch n := v.(type) {
	case int:
		return n == SitemapPageType
	case int64:
		return n == SitemapPageType
	case uint64:
		return n == SitemapPageType
	case float64:
		return n == SitemapPageType
	}
	return false
}

// SiteProvider locates the sitemap path configured as xml_sitemap_path on
// the site language or, for the default language, on the site.
type SiteProvider struct{}

// NewSiteProvider creates a new SiteProvider.
func NewSiteProvider() *SiteProvider {
	return &SiteProvider{}
}

func (p *SiteProvider) Name() string  { return SiteName }
func (p *SiteProvider) Priority() int { return SitePriority }

func (p *SiteProvider) Sitemaps(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	config := site.Configuration
	if !site.IsDefaultLanguage(lang) {
		config = lang.Configuration
	}

	path, _ := config["xml_sitemap_path"].(string)
	if strings.TrimSpace(path) == "" {
		return nil
	}

	u, err := locmap.SiteURLWithPath(site, lang, path)
	if err != nil {
		return nil
	}
	return []*locmap.Sitemap{locmap.NewSitemap(u, site, lang)}
}

// DefaultProvider assumes the sitemap lives at DefaultPath below the base URL.
// It always returns a sitemap and is meant to run last.
type DefaultProvider struct{}

// NewDefaultProvider creates a new DefaultProvider.
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

func (p *DefaultProvider) Name() string  { return DefaultName }
func (p *DefaultProvider) Priority() int { return DefaultPriority }

func (p *DefaultProvider) Sitemaps(ctx context.Context, site *locmap.Site, lang *locmap.Language) []*locmap.Sitemap {
	u, err := locmap.SiteURLWithPath(site, lang, DefaultPath)
	if err != nil {
		return nil
	}
	return []*locmap.Sitemap{locmap.NewSitemap(u, site, lang)}
}
